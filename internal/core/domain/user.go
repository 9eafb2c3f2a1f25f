package domain

import (
	"errors"
	"time"
)

// Role is the coarse-grained permission tier of a console user.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
)

// Valid reports whether the role is one of the two known tiers. Claims can
// carry arbitrary strings; an unknown role must fail authorization checks
// rather than crash them.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a console account. The password never crosses into
// persistence in plaintext; only the bcrypt digest is stored.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:EDITOR"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
