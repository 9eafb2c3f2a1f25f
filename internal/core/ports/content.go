package ports

import (
	"context"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// ServiceRepository defines persistence for service offerings.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// TeamRepository defines persistence for team members.
type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	FindByID(ctx context.Context, id string) (*domain.TeamMember, error)
	FindBySlug(ctx context.Context, slug string) (*domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

// CompanyRepository manages the singleton settings row.
type CompanyRepository interface {
	// Get returns the settings row, creating a default one when absent.
	Get(ctx context.Context) (*domain.CompanyInfo, error)
	Update(ctx context.Context, info *domain.CompanyInfo) (*domain.CompanyInfo, error)
}

// ContentService groups the simple content entities: service offerings,
// team members, and company settings.
type ContentService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, svc domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, svc domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListTeam(ctx context.Context) ([]domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, member domain.TeamMember) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, member domain.TeamMember) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	CompanyInfo(ctx context.Context) (*domain.CompanyInfo, error)
	UpdateCompanyInfo(ctx context.Context, info domain.CompanyInfo) (*domain.CompanyInfo, error)
}
