package ports

import (
	"context"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// ProjectFilter narrows a project listing. Zero values mean "no filter".
type ProjectFilter struct {
	Status   domain.ProjectStatus
	Category string
	Featured bool
}

// ProjectRepository defines persistence for projects and their images.
type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	// ReplaceImages swaps the whole gallery, preserving the given order.
	ReplaceImages(ctx context.Context, projectID string, images []domain.ProjectImage) error
	Delete(ctx context.Context, id string) error
}

// ImageInput is one gallery entry in a create/update payload; its position
// in the slice becomes its display order.
type ImageInput struct {
	ImageURL string
	Alt      string
}

// CreateProjectInput carries the fields of a project creation.
type CreateProjectInput struct {
	Title           string
	Slug            string
	Category        string
	Sector          string
	Description     string
	CoverImage      string
	Client          string
	Location        string
	Year            int
	Featured        bool
	Status          domain.ProjectStatus
	MetaTitle       string
	MetaDescription string
	CreatedByID     string
	Images          []ImageInput
}

// UpdateProjectInput mirrors CreateProjectInput for updates. Images nil
// means "leave the gallery alone"; an empty slice clears it.
type UpdateProjectInput struct {
	Title           string
	Slug            string
	Category        string
	Sector          string
	Description     string
	CoverImage      string
	Client          string
	Location        string
	Year            int
	Featured        bool
	Status          domain.ProjectStatus
	MetaTitle       string
	MetaDescription string
	Images          []ImageInput
	ReplaceImages   bool
}

// ProjectService implements portfolio CRUD with slug-uniqueness rules.
type ProjectService interface {
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
