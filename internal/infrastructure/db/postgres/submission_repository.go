package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// SubmissionRepository persists contact-form entries.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) List(ctx context.Context) ([]domain.FormSubmission, error) {
	var subs []domain.FormSubmission
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*domain.FormSubmission, error) {
	var sub domain.FormSubmission
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return &sub, nil
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.FormSubmission) (*domain.FormSubmission, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return sub, nil
}

func (r *SubmissionRepository) SetRead(ctx context.Context, id string, read bool) (*domain.FormSubmission, error) {
	res := r.db.WithContext(ctx).Model(&domain.FormSubmission{}).Where("id = ?", id).Update("is_read", read)
	if res.Error != nil {
		return nil, fmt.Errorf("mark submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrSubmissionNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.FormSubmission{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepository) Count(ctx context.Context) (total, unread int64, err error) {
	if err = r.db.WithContext(ctx).Model(&domain.FormSubmission{}).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("count submissions: %w", err)
	}
	if err = r.db.WithContext(ctx).Model(&domain.FormSubmission{}).Where("is_read = ?", false).Count(&unread).Error; err != nil {
		return 0, 0, fmt.Errorf("count unread submissions: %w", err)
	}
	return total, unread, nil
}
