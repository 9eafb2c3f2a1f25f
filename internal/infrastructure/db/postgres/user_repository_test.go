package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Name:         "Admin",
		Email:        "admin@arsitekstudio.com",
		PasswordHash: "digest",
		Role:         domain.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "admin@arsitekstudio.com", byID.Email)
	require.Equal(t, domain.RoleAdmin, byID.Role)

	// Email lookup is case-insensitive.
	byEmail, err := repo.FindByEmail(ctx, "ADMIN@ArsitekStudio.COM")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "A", Email: "a@b.com", PasswordHash: "h", Role: domain.RoleEditor})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Name: "B", Email: "A@B.com", PasswordHash: "h", Role: domain.RoleEditor})
	require.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@arsitekstudio.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrUserNotFound)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, &domain.User{Name: "A", Email: "a@b.com", PasswordHash: "h", Role: domain.RoleEditor})
	require.NoError(t, err)

	user.Role = domain.RoleAdmin
	updated, err := repo.Update(ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, updated.Role)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
