package domain

import "time"

// EventType classifies a tracked analytics event.
type EventType string

const (
	EventPageView    EventType = "PAGE_VIEW"
	EventProjectView EventType = "PROJECT_VIEW"
)

// AnalyticsEvent is one recorded visit. Events are append-only; all
// reporting is derived by aggregation at query time.
type AnalyticsEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Type      EventType `json:"type" gorm:"not null;index"`
	Slug      string    `json:"slug" gorm:"not null;index"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
