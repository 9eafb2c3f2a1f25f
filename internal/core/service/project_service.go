package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// ProjectService implements portfolio CRUD. Slugs are unique across
// projects; any authenticated editor may mutate any project.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if _, err := s.repo.FindBySlug(ctx, input.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}

	project := &domain.Project{
		Title:           input.Title,
		Slug:            input.Slug,
		Category:        input.Category,
		Sector:          input.Sector,
		Description:     input.Description,
		CoverImage:      input.CoverImage,
		Client:          input.Client,
		Location:        input.Location,
		Year:            input.Year,
		Featured:        input.Featured,
		Status:          status,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		CreatedByID:     input.CreatedByID,
		Images:          galleryFromInput(input.Images),
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", input.Slug).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("slug", created.Slug).Msg("project created")
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Slug moves must not collide with another project.
	if input.Slug != "" && input.Slug != existing.Slug {
		if _, err := s.repo.FindBySlug(ctx, input.Slug); err == nil {
			return nil, domain.ErrSlugTaken
		} else if !errors.Is(err, domain.ErrProjectNotFound) {
			return nil, err
		}
		existing.Slug = input.Slug
	}

	existing.Title = input.Title
	existing.Category = input.Category
	existing.Sector = input.Sector
	existing.Description = input.Description
	existing.CoverImage = input.CoverImage
	existing.Client = input.Client
	existing.Location = input.Location
	existing.Year = input.Year
	existing.Featured = input.Featured
	if input.Status != "" {
		existing.Status = input.Status
	}
	existing.MetaTitle = input.MetaTitle
	existing.MetaDescription = input.MetaDescription

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if input.ReplaceImages {
		if err := s.repo.ReplaceImages(ctx, id, galleryFromInput(input.Images)); err != nil {
			return nil, err
		}
		return s.repo.FindByID(ctx, id)
	}

	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// galleryFromInput converts payload images, assigning slice position as
// display order.
func galleryFromInput(images []ports.ImageInput) []domain.ProjectImage {
	out := make([]domain.ProjectImage, 0, len(images))
	for i, img := range images {
		out = append(out, domain.ProjectImage{
			ImageURL:     img.ImageURL,
			Alt:          img.Alt,
			DisplayOrder: i,
		})
	}
	return out
}
