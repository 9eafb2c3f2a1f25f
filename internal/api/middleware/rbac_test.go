package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

func runRBAC(t *testing.T, role any, allowed ...domain.Role) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(CtxRole, role)
	}

	return RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func TestRequireRole_Allowed(t *testing.T) {
	if err := runRBAC(t, domain.RoleAdmin, domain.RoleAdmin); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if err := runRBAC(t, domain.RoleEditor, domain.RoleAdmin, domain.RoleEditor); err != nil {
		t.Fatalf("editor rejected: %v", err)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	err := runRBAC(t, domain.RoleEditor, domain.RoleAdmin)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireRole_UnknownRoleForbidden(t *testing.T) {
	// A claim can carry any string; an unrecognised role is denied, not
	// crashed on.
	for _, role := range []any{domain.Role("SUPERUSER"), domain.Role(""), nil, "ADMIN"} {
		err := runRBAC(t, role, domain.RoleAdmin, domain.RoleEditor)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusForbidden {
			t.Fatalf("role %v: expected 403, got %v", role, err)
		}
	}
}
