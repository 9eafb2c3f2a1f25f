// Package admin embeds the static shell of the admin console. The real
// interface is rendered client-side; the server only ships the HTML
// entry points and enforces the session at the edge.
package admin

import "embed"

//go:embed *.html
var FS embed.FS
