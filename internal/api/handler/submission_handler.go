package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// SubmissionHandler exposes admin access to contact-form submissions.
type SubmissionHandler struct {
	submissions ports.SubmissionService
}

func NewSubmissionHandler(submissions ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

type markReadRequest struct {
	Read *bool `json:"read" validate:"required"`
}

// List returns all submissions, newest first.
//
// @Summary      List contact submissions
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  map[string][]domain.FormSubmission
// @Router       /api/submissions [get]
func (h *SubmissionHandler) List(c echo.Context) error {
	subs, err := h.submissions.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]domain.FormSubmission{"submissions": subs})
}

// Get returns a single submission.
//
// @Summary      Get a contact submission
// @Tags         submissions
// @Produce      json
// @Param        id  path  string  true  "Submission id"
// @Success      200  {object}  map[string]domain.FormSubmission
// @Failure      404  {object}  map[string]string
// @Router       /api/submissions/{id} [get]
func (h *SubmissionHandler) Get(c echo.Context) error {
	sub, err := h.submissions.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.FormSubmission{"submission": sub})
}

// MarkRead toggles the read flag on a submission.
//
// @Summary      Mark a submission read or unread
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Submission id"
// @Success      200  {object}  map[string]domain.FormSubmission
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/submissions/{id} [patch]
func (h *SubmissionHandler) MarkRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.submissions.MarkRead(c.Request().Context(), c.Param("id"), *req.Read)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.FormSubmission{"submission": sub})
}

// Delete removes a submission.
//
// @Summary      Delete a contact submission
// @Tags         submissions
// @Produce      json
// @Param        id  path  string  true  "Submission id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /api/submissions/{id} [delete]
func (h *SubmissionHandler) Delete(c echo.Context) error {
	if err := h.submissions.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
