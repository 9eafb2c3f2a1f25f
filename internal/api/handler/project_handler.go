package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for portfolio projects.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type imageRequest struct {
	ImageURL string `json:"image_url" validate:"required"`
	Alt      string `json:"alt"`
}

type createProjectRequest struct {
	Title           string         `json:"title" validate:"required"`
	Slug            string         `json:"slug" validate:"required"`
	Category        string         `json:"category" validate:"required"`
	Sector          string         `json:"sector" validate:"required"`
	Description     string         `json:"description" validate:"required"`
	CoverImage      string         `json:"cover_image" validate:"required"`
	Client          string         `json:"client"`
	Location        string         `json:"location"`
	Year            int            `json:"year"`
	Featured        bool           `json:"featured"`
	Status          string         `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	Images          []imageRequest `json:"images" validate:"dive"`
}

type updateProjectRequest struct {
	createProjectRequest
	// Images nil leaves the gallery untouched; [] clears it.
	Images *[]imageRequest `json:"images" validate:"omitempty,dive"`
}

func imagesFromRequest(images []imageRequest) []ports.ImageInput {
	out := make([]ports.ImageInput, 0, len(images))
	for _, img := range images {
		out = append(out, ports.ImageInput{ImageURL: img.ImageURL, Alt: img.Alt})
	}
	return out
}

// List returns projects, optionally filtered.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        status    query  string  false  "Filter by status"
// @Param        category  query  string  false  "Filter by category"
// @Param        featured  query  bool    false  "Only featured projects"
// @Success      200  {object}  map[string][]domain.Project
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	filter := ports.ProjectFilter{
		Status:   domain.ProjectStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
		Featured: c.QueryParam("featured") == "true",
	}

	projects, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]domain.Project{"projects": projects})
}

// Get returns one project by its public slug.
//
// @Summary      Get a project by slug
// @Tags         projects
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  map[string]domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/{slug} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Project{"project": project})
}

// Create adds a project.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]domain.Project
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Category:        req.Category,
		Sector:          req.Sector,
		Description:     req.Description,
		CoverImage:      req.CoverImage,
		Client:          req.Client,
		Location:        req.Location,
		Year:            req.Year,
		Featured:        req.Featured,
		Status:          domain.ProjectStatus(req.Status),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedByID:     claims.UserID,
		Images:          imagesFromRequest(req.Images),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]*domain.Project{"project": project})
}

// Update replaces a project's fields and, when images are sent, its
// gallery.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  map[string]domain.Project
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateProjectInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Category:        req.Category,
		Sector:          req.Sector,
		Description:     req.Description,
		CoverImage:      req.CoverImage,
		Client:          req.Client,
		Location:        req.Location,
		Year:            req.Year,
		Featured:        req.Featured,
		Status:          domain.ProjectStatus(req.Status),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}
	if req.Images != nil {
		input.ReplaceImages = true
		input.Images = imagesFromRequest(*req.Images)
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Project{"project": project})
}

// Delete removes a project and its gallery.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
