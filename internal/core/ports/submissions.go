package ports

import (
	"context"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// SubmissionRepository defines persistence for contact-form entries.
type SubmissionRepository interface {
	List(ctx context.Context) ([]domain.FormSubmission, error)
	FindByID(ctx context.Context, id string) (*domain.FormSubmission, error)
	Create(ctx context.Context, sub *domain.FormSubmission) (*domain.FormSubmission, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.FormSubmission, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (total, unread int64, err error)
}

// ContactInput is a public contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// SubmissionService persists contact submissions and notifies the firm.
type SubmissionService interface {
	Submit(ctx context.Context, input ContactInput) (*domain.FormSubmission, error)
	List(ctx context.Context) ([]domain.FormSubmission, error)
	Get(ctx context.Context, id string) (*domain.FormSubmission, error)
	MarkRead(ctx context.Context, id string, read bool) (*domain.FormSubmission, error)
	Delete(ctx context.Context, id string) error
}

// Mailer sends the contact notification. Implementations must be safe for
// concurrent use; failures are logged, never surfaced to the submitter.
type Mailer interface {
	SendContactNotification(ctx context.Context, sub *domain.FormSubmission) error
}
