package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// ContactHandler receives public contact-form submissions.
type ContactHandler struct {
	submissions ports.SubmissionService
}

func NewContactHandler(submissions ports.SubmissionService) *ContactHandler {
	return &ContactHandler{submissions: submissions}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Submit stores a contact-form entry and queues the notification email.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.submissions.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"id":      sub.ID,
		"message": "thank you, we will be in touch",
	})
}
