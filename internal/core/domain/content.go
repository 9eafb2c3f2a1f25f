package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")
var ErrTeamMemberNotFound = errors.New("team member not found")

// Service is one of the firm's offerings shown on the services page,
// ordered by DisplayOrder.
type Service struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Number       string    `json:"number" gorm:"not null"`
	Title        string    `json:"title" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Icon         string    `json:"icon,omitempty"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeamMember is a person on the team page.
type TeamMember struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Role         string    `json:"role" gorm:"not null"`
	Photo        string    `json:"photo" gorm:"not null"`
	Bio          string    `json:"bio,omitempty" gorm:"type:text"`
	Email        string    `json:"email,omitempty"`
	LinkedIn     string    `json:"linkedin,omitempty"`
	Department   string    `json:"department" gorm:"not null"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
