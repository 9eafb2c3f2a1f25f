package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// SettingsHandler exposes the firm-wide company settings.
type SettingsHandler struct {
	content ports.ContentService
}

func NewSettingsHandler(content ports.ContentService) *SettingsHandler {
	return &SettingsHandler{content: content}
}

type settingsRequest struct {
	Name              string `json:"name" validate:"required"`
	Tagline           string `json:"tagline"`
	Story             string `json:"story"`
	Philosophy        string `json:"philosophy"`
	Vision            string `json:"vision"`
	Mission           string `json:"mission"`
	YearsExperience   int    `json:"years_experience"`
	ProjectsCompleted int    `json:"projects_completed"`
	TeamSize          int    `json:"team_size"`
	Awards            int    `json:"awards"`
	Email             string `json:"email" validate:"omitempty,email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	GoogleMapsEmbed   string `json:"google_maps_embed"`
	Instagram         string `json:"instagram"`
	LinkedIn          string `json:"linkedin"`
	Facebook          string `json:"facebook"`
}

// Get returns the company settings, creating defaults on first read.
//
// @Summary      Get company settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]domain.CompanyInfo
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	info, err := h.content.CompanyInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.CompanyInfo{"settings": info})
}

// Update replaces the company settings.
//
// @Summary      Update company settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]domain.CompanyInfo
// @Failure      400  {object}  map[string]string
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.content.UpdateCompanyInfo(c.Request().Context(), domain.CompanyInfo{
		Name:              req.Name,
		Tagline:           req.Tagline,
		Story:             req.Story,
		Philosophy:        req.Philosophy,
		Vision:            req.Vision,
		Mission:           req.Mission,
		YearsExperience:   req.YearsExperience,
		ProjectsCompleted: req.ProjectsCompleted,
		TeamSize:          req.TeamSize,
		Awards:            req.Awards,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		GoogleMapsEmbed:   req.GoogleMapsEmbed,
		Instagram:         req.Instagram,
		LinkedIn:          req.LinkedIn,
		Facebook:          req.Facebook,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.CompanyInfo{"settings": info})
}
