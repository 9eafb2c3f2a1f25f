package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/auth"
)

// Context keys populated by Session for downstream handlers.
const (
	CtxClaims = "claims"
	CtxUserID = "userID"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Session resolves the session cookie to a verified identity and injects
// the claims into the echo context. API routes answer 401 when no valid
// identity exists; a missing cookie, a forged token, and an expired token
// are all the same condition here.
func Session(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := resolver.CurrentIdentity(c.Request())
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			c.Set(CtxClaims, claims)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
