package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// TeamHandler handles HTTP requests for team members.
type TeamHandler struct {
	content ports.ContentService
}

func NewTeamHandler(content ports.ContentService) *TeamHandler {
	return &TeamHandler{content: content}
}

type teamMemberRequest struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Role         string `json:"role" validate:"required"`
	Photo        string `json:"photo" validate:"required"`
	Bio          string `json:"bio"`
	Email        string `json:"email" validate:"omitempty,email"`
	LinkedIn     string `json:"linkedin"`
	Department   string `json:"department" validate:"required"`
	DisplayOrder int    `json:"display_order"`
}

func (r teamMemberRequest) toDomain() domain.TeamMember {
	return domain.TeamMember{
		Name:         r.Name,
		Slug:         r.Slug,
		Role:         r.Role,
		Photo:        r.Photo,
		Bio:          r.Bio,
		Email:        r.Email,
		LinkedIn:     r.LinkedIn,
		Department:   r.Department,
		DisplayOrder: r.DisplayOrder,
	}
}

// List returns all team members ordered for display.
//
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Success      200  {object}  map[string][]domain.TeamMember
// @Router       /api/team [get]
func (h *TeamHandler) List(c echo.Context) error {
	members, err := h.content.ListTeam(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]domain.TeamMember{"team": members})
}

// Create adds a team member.
//
// @Summary      Create a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]domain.TeamMember
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/team [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req teamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.content.CreateTeamMember(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]*domain.TeamMember{"member": member})
}

// Update replaces a team member's fields.
//
// @Summary      Update a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Team member id"
// @Success      200  {object}  map[string]domain.TeamMember
// @Failure      404  {object}  map[string]string
// @Router       /api/team/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	var req teamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.content.UpdateTeamMember(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.TeamMember{"member": member})
}

// Delete removes a team member.
//
// @Summary      Delete a team member
// @Tags         team
// @Produce      json
// @Param        id  path  string  true  "Team member id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /api/team/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	if err := h.content.DeleteTeamMember(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
