package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// ContentService covers the flat content entities: service offerings, team
// members, and the company settings singleton.
type ContentService struct {
	services ports.ServiceRepository
	team     ports.TeamRepository
	company  ports.CompanyRepository
	logger   zerolog.Logger
}

func NewContentService(services ports.ServiceRepository, team ports.TeamRepository, company ports.CompanyRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{services: services, team: team, company: company, logger: logger}
}

func (s *ContentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *ContentService) CreateService(ctx context.Context, svc domain.Service) (*domain.Service, error) {
	if _, err := s.services.FindBySlug(ctx, svc.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrServiceNotFound) {
		return nil, err
	}
	return s.services.Create(ctx, &svc)
}

func (s *ContentService) UpdateService(ctx context.Context, id string, svc domain.Service) (*domain.Service, error) {
	existing, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.Slug != "" && svc.Slug != existing.Slug {
		if _, err := s.services.FindBySlug(ctx, svc.Slug); err == nil {
			return nil, domain.ErrSlugTaken
		} else if !errors.Is(err, domain.ErrServiceNotFound) {
			return nil, err
		}
		existing.Slug = svc.Slug
	}
	existing.Number = svc.Number
	existing.Title = svc.Title
	existing.Description = svc.Description
	existing.Icon = svc.Icon
	existing.DisplayOrder = svc.DisplayOrder
	return s.services.Update(ctx, existing)
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	if _, err := s.services.FindByID(ctx, id); err != nil {
		return err
	}
	return s.services.Delete(ctx, id)
}

func (s *ContentService) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.team.List(ctx)
}

func (s *ContentService) CreateTeamMember(ctx context.Context, member domain.TeamMember) (*domain.TeamMember, error) {
	if _, err := s.team.FindBySlug(ctx, member.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrTeamMemberNotFound) {
		return nil, err
	}
	return s.team.Create(ctx, &member)
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, id string, member domain.TeamMember) (*domain.TeamMember, error) {
	existing, err := s.team.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.Slug != "" && member.Slug != existing.Slug {
		if _, err := s.team.FindBySlug(ctx, member.Slug); err == nil {
			return nil, domain.ErrSlugTaken
		} else if !errors.Is(err, domain.ErrTeamMemberNotFound) {
			return nil, err
		}
		existing.Slug = member.Slug
	}
	existing.Name = member.Name
	existing.Role = member.Role
	existing.Photo = member.Photo
	existing.Bio = member.Bio
	existing.Email = member.Email
	existing.LinkedIn = member.LinkedIn
	existing.Department = member.Department
	existing.DisplayOrder = member.DisplayOrder
	return s.team.Update(ctx, existing)
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id string) error {
	if _, err := s.team.FindByID(ctx, id); err != nil {
		return err
	}
	return s.team.Delete(ctx, id)
}

func (s *ContentService) CompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	return s.company.Get(ctx)
}

func (s *ContentService) UpdateCompanyInfo(ctx context.Context, info domain.CompanyInfo) (*domain.CompanyInfo, error) {
	updated, err := s.company.Update(ctx, &info)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Msg("company settings updated")
	return updated, nil
}
