package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// ServiceHandler handles HTTP requests for service offerings.
type ServiceHandler struct {
	content ports.ContentService
}

func NewServiceHandler(content ports.ContentService) *ServiceHandler {
	return &ServiceHandler{content: content}
}

type serviceRequest struct {
	Number       string `json:"number" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
}

func (r serviceRequest) toDomain() domain.Service {
	return domain.Service{
		Number:       r.Number,
		Title:        r.Title,
		Slug:         r.Slug,
		Description:  r.Description,
		Icon:         r.Icon,
		DisplayOrder: r.DisplayOrder,
	}
}

// List returns all services ordered for display.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {object}  map[string][]domain.Service
// @Router       /api/services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.content.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]domain.Service{"services": services})
}

// Create adds a service offering.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]domain.Service
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.content.CreateService(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]*domain.Service{"service": svc})
}

// Update replaces a service's fields.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Service id"
// @Success      200  {object}  map[string]domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.content.UpdateService(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Service{"service": svc})
}

// Delete removes a service offering.
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Param        id  path  string  true  "Service id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.content.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
