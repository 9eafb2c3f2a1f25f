package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// ServiceRepository persists service offerings.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	var svc domain.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) FindBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	var svc domain.Service
	if err := r.db.WithContext(ctx).First(&svc, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service by slug: %w", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if err := r.db.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Service{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

// TeamRepository persists team members.
type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	err := r.db.WithContext(ctx).Order("display_order ASC").Order("created_at DESC").Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return members, nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	var member domain.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("find team member: %w", err)
	}
	return &member, nil
}

func (r *TeamRepository) FindBySlug(ctx context.Context, slug string) (*domain.TeamMember, error) {
	var member domain.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("find team member by slug: %w", err)
	}
	return &member, nil
}

func (r *TeamRepository) Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return member, nil
}

func (r *TeamRepository) Update(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	if err := r.db.WithContext(ctx).Save(member).Error; err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}
	return member, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.TeamMember{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTeamMemberNotFound
	}
	return nil
}

// CompanyRepository manages the singleton settings row.
type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Get returns the settings row, creating a minimal default when none
// exists yet.
func (r *CompanyRepository) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	var info domain.CompanyInfo
	err := r.db.WithContext(ctx).First(&info, "id = ?", domain.CompanyInfoID).Error
	if err == nil {
		return &info, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get company info: %w", err)
	}

	info = domain.CompanyInfo{ID: domain.CompanyInfoID, Name: "Arsitek Studio"}
	if err := r.db.WithContext(ctx).Create(&info).Error; err != nil {
		return nil, fmt.Errorf("create default company info: %w", err)
	}
	return &info, nil
}

func (r *CompanyRepository) Update(ctx context.Context, info *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	// Upsert against the fixed ID so updates work even before first read.
	info.ID = domain.CompanyInfoID
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Save(info).Error; err != nil {
		return nil, fmt.Errorf("update company info: %w", err)
	}
	return info, nil
}
