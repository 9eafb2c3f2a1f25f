package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/auth"
	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

func testCodec() *auth.TokenCodec {
	return auth.NewTokenCodec("test-secret", "", time.Hour)
}

func runSession(t *testing.T, token string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(auth.NewResolver(testCodec()))
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, c, err
}

func TestSession_ValidTokenInjectsClaims(t *testing.T) {
	token, err := testCodec().Sign("user-9", "editor@arsitekstudio.com", domain.RoleEditor)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	rec, c, err := runSession(t, token)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	claims, _ := c.Get(CtxClaims).(*auth.Claims)
	if claims == nil || claims.UserID != "user-9" {
		t.Fatalf("claims not injected: %+v", claims)
	}
	if c.Get(CtxUserID) != "user-9" {
		t.Errorf("userID = %v", c.Get(CtxUserID))
	}
	if c.Get(CtxEmail) != "editor@arsitekstudio.com" {
		t.Errorf("email = %v", c.Get(CtxEmail))
	}
	if c.Get(CtxRole) != domain.RoleEditor {
		t.Errorf("role = %v", c.Get(CtxRole))
	}
}

// Missing, forged, and expired sessions must produce the same 401.
func TestSession_InvalidSessionsAllUnauthorized(t *testing.T) {
	forged, err := auth.NewTokenCodec("wrong-secret", "", time.Hour).Sign("u", "a@b.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	expired, err := auth.NewTokenCodec("test-secret", "", -time.Minute).Sign("u", "a@b.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	cases := map[string]string{
		"missing": "",
		"garbage": "nonsense",
		"forged":  forged,
		"expired": expired,
	}
	var firstMsg any
	for name, token := range cases {
		_, _, err := runSession(t, token)
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected HTTPError, got %v", name, err)
		}
		if he.Code != http.StatusUnauthorized {
			t.Errorf("%s: code = %d, want 401", name, he.Code)
		}
		if firstMsg == nil {
			firstMsg = he.Message
		} else if he.Message != firstMsg {
			t.Errorf("%s: message %v differs from %v; rejections must be indistinguishable", name, he.Message, firstMsg)
		}
	}
}
