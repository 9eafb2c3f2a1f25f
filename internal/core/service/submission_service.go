package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/api/metrics"
	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

const notifyTimeout = 10 * time.Second

// SubmissionService persists contact-form entries and notifies the firm by
// email. The notification is best-effort: a failed send is logged and the
// submitter still gets a success response.
type SubmissionService struct {
	repo   ports.SubmissionRepository
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewSubmissionService(repo ports.SubmissionRepository, mailer ports.Mailer, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, mailer: mailer, logger: logger}
}

func (s *SubmissionService) Submit(ctx context.Context, input ports.ContactInput) (*domain.FormSubmission, error) {
	sub, err := s.repo.Create(ctx, &domain.FormSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		return nil, err
	}

	metrics.SubmissionsTotal.Inc()
	s.logger.Info().Str("submission_id", sub.ID).Str("subject", sub.Subject).Msg("contact submission received")

	if s.mailer != nil {
		go func(sub domain.FormSubmission) {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := s.mailer.SendContactNotification(ctx, &sub); err != nil {
				s.logger.Error().Err(err).Str("submission_id", sub.ID).Msg("contact notification failed")
			}
		}(*sub)
	}

	return sub, nil
}

func (s *SubmissionService) List(ctx context.Context) ([]domain.FormSubmission, error) {
	return s.repo.List(ctx)
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.FormSubmission, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SubmissionService) MarkRead(ctx context.Context, id string, read bool) (*domain.FormSubmission, error) {
	return s.repo.SetRead(ctx, id, read)
}

func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
