package ports

import (
	"context"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// UserRepository defines persistence for console accounts. Lookups by
// email are case-insensitive.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// AuthService implements login for the console.
type AuthService interface {
	// Login verifies credentials and mints a signed session token.
	// Unknown email and wrong password are reported identically as
	// domain.ErrInvalidCredentials to prevent user enumeration.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// CreateUserInput carries the fields of an admin-initiated account creation.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput carries a partial account update. Empty fields are left
// unchanged; a non-empty Password is re-hashed.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UserService manages console accounts (admin-only operations).
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
