package domain

import (
	"errors"
	"time"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// FormSubmission is a contact-form entry awaiting review in the console.
type FormSubmission struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}
