package auth

import (
	"net/http"
	"strings"
	"time"
)

// CookieName is the session cookie written at login and cleared at logout.
const CookieName = "auth-token"

// SessionCookie wraps a signed token in an HTTP-only, same-site cookie
// whose lifetime mirrors the token's validity window. Secure is set when
// the response travels over an encrypted transport.
func SessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie returns a cookie that deletes the session on the client.
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ReadToken extracts the raw session token from the request without
// interpreting it. The empty string means no cookie was sent.
func ReadToken(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// RequestIsSecure reports whether the request arrived over TLS, directly
// or behind a proxy that set X-Forwarded-Proto.
func RequestIsSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
