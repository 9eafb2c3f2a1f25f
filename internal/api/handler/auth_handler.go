package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/api/metrics"
	"github.com/arsitekstudio/cms-api/internal/auth"
	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// AuthHandler handles login, logout, and the current-session endpoint.
type AuthHandler struct {
	authService ports.AuthService
	resolver    *auth.Resolver
	codec       *auth.TokenCodec
}

func NewAuthHandler(authService ports.AuthService, resolver *auth.Resolver, codec *auth.TokenCodec) *AuthHandler {
	return &AuthHandler{authService: authService, resolver: resolver, codec: codec}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// Login authenticates a user and establishes the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  map[string]sessionUser
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(auth.SessionCookie(token, h.codec.TTL(), auth.RequestIsSecure(c.Request())))

	return c.JSON(http.StatusOK, map[string]sessionUser{
		"user": {ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry — there is no server-side session to destroy.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.ClearCookie(auth.RequestIsSecure(c.Request())))
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the identity asserted by the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]sessionUser
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims := h.resolver.CurrentIdentity(c.Request())
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(http.StatusOK, map[string]sessionUser{
		"user": {ID: claims.UserID, Email: claims.Email, Role: claims.Role},
	})
}
