package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// ProjectRepository persists projects and their image galleries.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// withRelations preloads the gallery in display order and the creator.
func (r *ProjectRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("CreatedBy")
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	q := r.withRelations(ctx)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Featured {
		q = q.Where("featured = ?", true)
	}

	var projects []domain.Project
	if err := q.Order("display_order ASC").Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	err := r.withRelations(ctx).First(&project, "projects.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	var project domain.Project
	err := r.withRelations(ctx).First(&project, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	for i := range project.Images {
		if project.Images[i].ID == "" {
			project.Images[i].ID = uuid.NewString()
		}
		project.Images[i].ProjectID = project.ID
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return r.FindByID(ctx, project.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	err := r.db.WithContext(ctx).Omit("Images", "CreatedBy").Save(project).Error
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return r.FindByID(ctx, project.ID)
}

// ReplaceImages swaps the whole gallery in one transaction.
func (r *ProjectRepository) ReplaceImages(ctx context.Context, projectID string, images []domain.ProjectImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.ProjectImage{}, "project_id = ?", projectID).Error; err != nil {
			return fmt.Errorf("clear gallery: %w", err)
		}
		for i := range images {
			images[i].ID = uuid.NewString()
			images[i].ProjectID = projectID
		}
		if len(images) == 0 {
			return nil
		}
		if err := tx.Create(&images).Error; err != nil {
			return fmt.Errorf("insert gallery: %w", err)
		}
		return nil
	})
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.ProjectImage{}, "project_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete gallery: %w", err)
		}
		res := tx.Delete(&domain.Project{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrProjectNotFound
		}
		return nil
	})
}
