package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

func TestServiceRepository_ListOrdered(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	ctx := context.Background()

	for _, svc := range []domain.Service{
		{Number: "02", Title: "Interior", Slug: "interior", Description: "d", DisplayOrder: 2},
		{Number: "01", Title: "Architecture", Slug: "architecture", Description: "d", DisplayOrder: 1},
	} {
		svc := svc
		_, err := repo.Create(ctx, &svc)
		require.NoError(t, err)
	}

	services, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	require.Equal(t, "architecture", services[0].Slug)
	require.Equal(t, "interior", services[1].Slug)
}

func TestServiceRepository_NotFound(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrServiceNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrServiceNotFound)
}

func TestTeamRepository_Lifecycle(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	ctx := context.Background()

	member, err := repo.Create(ctx, &domain.TeamMember{
		Name:       "Siti Rahayu",
		Slug:       "siti-rahayu",
		Role:       "Principal Architect",
		Photo:      "/uploads/siti.jpg",
		Department: "Design",
	})
	require.NoError(t, err)
	require.NotEmpty(t, member.ID)

	member.Role = "Design Director"
	updated, err := repo.Update(ctx, member)
	require.NoError(t, err)
	require.Equal(t, "Design Director", updated.Role)

	bySlug, err := repo.FindBySlug(ctx, "siti-rahayu")
	require.NoError(t, err)
	require.Equal(t, member.ID, bySlug.ID)

	require.NoError(t, repo.Delete(ctx, member.ID))
	_, err = repo.FindByID(ctx, member.ID)
	require.ErrorIs(t, err, domain.ErrTeamMemberNotFound)
}

// The settings row is a singleton created on first read.
func TestCompanyRepository_GetCreatesDefault(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))
	ctx := context.Background()

	info, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.CompanyInfoID, info.ID)
	require.NotEmpty(t, info.Name)

	info.Tagline = "Designing spaces that inspire"
	_, err = repo.Update(ctx, info)
	require.NoError(t, err)

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, info.ID, again.ID)
	require.Equal(t, "Designing spaces that inspire", again.Tagline)
}
