package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

type stubProjectRepo struct {
	listFn          func(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error)
	findByIDFn      func(ctx context.Context, id string) (*domain.Project, error)
	findBySlugFn    func(ctx context.Context, slug string) (*domain.Project, error)
	createFn        func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	updateFn        func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	replaceImagesFn func(ctx context.Context, projectID string, images []domain.ProjectImage) error
	deleteFn        func(ctx context.Context, id string) error
}

func (s *stubProjectRepo) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	return s.listFn(ctx, filter)
}
func (s *stubProjectRepo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubProjectRepo) FindBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	return s.findBySlugFn(ctx, slug)
}
func (s *stubProjectRepo) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	return s.createFn(ctx, project)
}
func (s *stubProjectRepo) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	return s.updateFn(ctx, project)
}
func (s *stubProjectRepo) ReplaceImages(ctx context.Context, projectID string, images []domain.ProjectImage) error {
	return s.replaceImagesFn(ctx, projectID, images)
}
func (s *stubProjectRepo) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }

func TestProjectService_Create_DefaultsToDraft(t *testing.T) {
	repo := &stubProjectRepo{
		findBySlugFn: func(ctx context.Context, slug string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
		createFn: func(ctx context.Context, project *domain.Project) (*domain.Project, error) {
			project.ID = "p1"
			return project, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title: "Villa", Slug: "villa", Category: "Residential",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.Status != domain.StatusDraft {
		t.Errorf("status = %q, want DRAFT default", created.Status)
	}
}

func TestProjectService_Create_SlugTaken(t *testing.T) {
	repo := &stubProjectRepo{
		findBySlugFn: func(ctx context.Context, slug string) (*domain.Project, error) {
			return &domain.Project{ID: "existing", Slug: slug}, nil
		},
		createFn: func(ctx context.Context, project *domain.Project) (*domain.Project, error) {
			t.Fatal("create must not reach the repository")
			return nil, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "X", Slug: "taken"})
	if err != domain.ErrSlugTaken {
		t.Fatalf("error = %v, want ErrSlugTaken", err)
	}
}

func TestProjectService_Create_OrdersGallery(t *testing.T) {
	var stored *domain.Project
	repo := &stubProjectRepo{
		findBySlugFn: func(ctx context.Context, slug string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
		createFn: func(ctx context.Context, project *domain.Project) (*domain.Project, error) {
			stored = project
			return project, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title: "X", Slug: "x",
		Images: []ports.ImageInput{
			{ImageURL: "/uploads/a.jpg"},
			{ImageURL: "/uploads/b.jpg"},
			{ImageURL: "/uploads/c.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	for i, img := range stored.Images {
		if img.DisplayOrder != i {
			t.Errorf("image %d display order = %d", i, img.DisplayOrder)
		}
	}
}

func TestProjectService_Update_SlugMoveCollision(t *testing.T) {
	repo := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id, Slug: "old-slug"}, nil
		},
		findBySlugFn: func(ctx context.Context, slug string) (*domain.Project, error) {
			return &domain.Project{ID: "other", Slug: slug}, nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "p1", ports.UpdateProjectInput{Title: "X", Slug: "taken"})
	if err != domain.ErrSlugTaken {
		t.Fatalf("error = %v, want ErrSlugTaken", err)
	}
}

func TestProjectService_Update_GallerySemantics(t *testing.T) {
	replaced := false
	repo := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id, Slug: "x"}, nil
		},
		updateFn: func(ctx context.Context, project *domain.Project) (*domain.Project, error) {
			return project, nil
		},
		replaceImagesFn: func(ctx context.Context, projectID string, images []domain.ProjectImage) error {
			replaced = true
			if len(images) != 0 {
				t.Errorf("expected empty gallery, got %d images", len(images))
			}
			return nil
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	// No images sent: gallery untouched.
	if _, err := svc.Update(context.Background(), "p1", ports.UpdateProjectInput{Title: "X", Slug: "x"}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if replaced {
		t.Fatal("gallery replaced although no images were sent")
	}

	// Empty slice sent: gallery cleared.
	_, err := svc.Update(context.Background(), "p1", ports.UpdateProjectInput{
		Title: "X", Slug: "x", ReplaceImages: true, Images: []ports.ImageInput{},
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if !replaced {
		t.Fatal("gallery not replaced although an empty list was sent")
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	repo := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	svc := NewProjectService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrProjectNotFound {
		t.Fatalf("error = %v, want ErrProjectNotFound", err)
	}
}
