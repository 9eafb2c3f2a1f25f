package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/web/admin"
)

// AdminPagesHandler serves the embedded HTML shell of the admin console.
// Session enforcement happens in the edge guard middleware, not here.
type AdminPagesHandler struct{}

func NewAdminPagesHandler() *AdminPagesHandler {
	return &AdminPagesHandler{}
}

func (h *AdminPagesHandler) Index(c echo.Context) error {
	return h.serve(c, "index.html")
}

func (h *AdminPagesHandler) Login(c echo.Context) error {
	return h.serve(c, "login.html")
}

func (h *AdminPagesHandler) serve(c echo.Context, name string) error {
	page, err := admin.FS.ReadFile(name)
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page)
}
