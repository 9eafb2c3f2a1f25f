package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/auth"
)

// LoginPath is the admin login page, exempt from the edge guard so a
// redirect loop is impossible.
const LoginPath = "/admin/login"

// EdgeGuard intercepts admin page navigations before any UI is served.
// It runs only the cheap structural check (auth.LooksLikeToken) — it is a
// fast path to keep obviously-unauthenticated traffic away from the
// console shell, never a substitute for the full verification every API
// handler performs via the session middleware.
//
// Missing cookie: redirect to login carrying the requested path as
// callbackUrl. Malformed cookie: redirect to login without a callback.
// The asymmetry is intentional and mirrors the console's long-standing
// behavior; both paths are pinned by tests.
func EdgeGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if path == LoginPath || strings.HasPrefix(path, LoginPath+"/") {
				return next(c)
			}

			token := auth.ReadToken(c.Request())
			if token == "" {
				target := LoginPath + "?callbackUrl=" + url.QueryEscape(path)
				return c.Redirect(http.StatusFound, target)
			}

			if !auth.LooksLikeToken(token) {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			return next(c)
		}
	}
}
