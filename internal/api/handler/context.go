package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/api/middleware"
	"github.com/arsitekstudio/cms-api/internal/auth"
)

// ctxClaims extracts the session claims injected by the Session middleware
// and fast-fails when they are absent: presence proves the middleware ran,
// so a missing claim means the route was wired without it.
func ctxClaims(c echo.Context) (*auth.Claims, error) {
	claims, _ := c.Get(middleware.CtxClaims).(*auth.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
