package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arsitekstudio/cms-api/internal/auth"
	"github.com/arsitekstudio/cms-api/pkg/logger"
)

// The prometheus middleware registers its collectors in the default
// registry, so the router is built once and shared by the sub-tests.
func TestRouter_AdminPages(t *testing.T) {
	logger.Init(logger.Options{Output: io.Discard})

	codec := auth.NewTokenCodec("router-test-secret", "", time.Hour)
	e := NewRouter(Dependencies{
		Codec:    codec,
		Resolver: auth.NewResolver(codec),
	})

	request := func(path, cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "auth-token", Value: cookie})
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("sub-path without cookie redirects with callback", func(t *testing.T) {
		rec := request("/admin/projects", "")
		if rec.Code != http.StatusFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
		}
		want := "/admin/login?callbackUrl=%2Fadmin%2Fprojects"
		if got := rec.Header().Get("Location"); got != want {
			t.Fatalf("location = %q, want %q", got, want)
		}
	})

	t.Run("sub-path with token-shaped cookie serves the shell", func(t *testing.T) {
		paths := []string{
			"/admin/projects",
			"/admin/settings",
			"/admin/projects/editing/abc",
		}
		for _, path := range paths {
			rec := request(path, "aaa.bbb.ccc")
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: status = %d, want %d", path, rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), "Arsitek Studio") {
				t.Fatalf("%s: body does not look like the console shell", path)
			}
		}
	})

	t.Run("index routes serve the shell", func(t *testing.T) {
		for _, path := range []string{"/admin", "/admin/"} {
			rec := request(path, "aaa.bbb.ccc")
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: status = %d, want %d", path, rec.Code, http.StatusOK)
			}
		}
	})

	t.Run("login page wins over the wildcard", func(t *testing.T) {
		for _, path := range []string{"/admin/login", "/admin/login/"} {
			rec := request(path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: status = %d, want %d", path, rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), "Sign in") {
				t.Fatalf("%s: body is not the login page", path)
			}
		}
	})
}
