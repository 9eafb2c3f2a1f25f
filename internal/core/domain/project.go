package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the publication state of a project.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "DRAFT"
	StatusPublished ProjectStatus = "PUBLISHED"
	StatusArchived  ProjectStatus = "ARCHIVED"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrSlugTaken = errors.New("slug already exists")

// Project is the portfolio aggregate root. Images are owned by the project
// and deleted with it.
type Project struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36"`
	Title           string         `json:"title" gorm:"not null"`
	Slug            string         `json:"slug" gorm:"uniqueIndex;not null"`
	Category        string         `json:"category" gorm:"not null"`
	Sector          string         `json:"sector" gorm:"not null"`
	Description     string         `json:"description" gorm:"type:text;not null"`
	CoverImage      string         `json:"cover_image" gorm:"not null"`
	Client          string         `json:"client,omitempty"`
	Location        string         `json:"location,omitempty"`
	Year            int            `json:"year,omitempty"`
	Featured        bool           `json:"featured" gorm:"default:false"`
	DisplayOrder    int            `json:"display_order" gorm:"default:0"`
	Status          ProjectStatus  `json:"status" gorm:"not null;default:DRAFT"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	CreatedByID     string         `json:"created_by_id" gorm:"size:36;index"`
	CreatedBy       *User          `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Images          []ProjectImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ProjectImage is a gallery entry, ordered by DisplayOrder.
type ProjectImage struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	ProjectID    string `json:"project_id" gorm:"size:36;index;not null"`
	ImageURL     string `json:"image_url" gorm:"not null"`
	Alt          string `json:"alt,omitempty"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
}
