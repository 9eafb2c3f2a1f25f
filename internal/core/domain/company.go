package domain

import "time"

// CompanyInfoID is the fixed primary key of the singleton settings row.
const CompanyInfoID = "main"

// CompanyInfo holds the firm-wide settings edited on the admin settings
// page and rendered on the public about/contact pages. Exactly one row
// exists; it is created on first read if absent.
type CompanyInfo struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	Name              string    `json:"name" gorm:"not null"`
	Tagline           string    `json:"tagline,omitempty"`
	Story             string    `json:"story,omitempty" gorm:"type:text"`
	Philosophy        string    `json:"philosophy,omitempty" gorm:"type:text"`
	Vision            string    `json:"vision,omitempty" gorm:"type:text"`
	Mission           string    `json:"mission,omitempty" gorm:"type:text"`
	YearsExperience   int       `json:"years_experience" gorm:"default:0"`
	ProjectsCompleted int       `json:"projects_completed" gorm:"default:0"`
	TeamSize          int       `json:"team_size" gorm:"default:0"`
	Awards            int       `json:"awards" gorm:"default:0"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	GoogleMapsEmbed   string    `json:"google_maps_embed,omitempty" gorm:"type:text"`
	Instagram         string    `json:"instagram,omitempty"`
	LinkedIn          string    `json:"linkedin,omitempty"`
	Facebook          string    `json:"facebook,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
