package ports

import (
	"context"
	"time"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// TrackEventInput is one visit as captured at the edge of a request.
type TrackEventInput struct {
	Type      domain.EventType
	Slug      string
	UserAgent string
	Referrer  string
	IP        string
}

// SlugCount is one row of a top-N aggregation.
type SlugCount struct {
	Slug  string `json:"slug"`
	Views int64  `json:"views"`
}

// DailyCount is one day of the views time series.
type DailyCount struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

// SubmissionCounts summarises the contact inbox for the dashboard.
type SubmissionCounts struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

// Stats is the aggregated analytics report for the admin dashboard.
type Stats struct {
	PageViews    int64            `json:"page_views"`
	ProjectViews int64            `json:"project_views"`
	TopPages     []SlugCount      `json:"top_pages"`
	TopProjects  []SlugCount      `json:"top_projects"`
	DailyViews   []DailyCount     `json:"daily_views"`
	Submissions  SubmissionCounts `json:"submissions"`
}

// AnalyticsRepository defines the append-only event store and its
// aggregation queries.
type AnalyticsRepository interface {
	Insert(ctx context.Context, event *domain.AnalyticsEvent) error
	CountByType(ctx context.Context, t domain.EventType, since time.Time) (int64, error)
	TopSlugs(ctx context.Context, t domain.EventType, since time.Time, limit int) ([]SlugCount, error)
	DailyCounts(ctx context.Context, days int) ([]DailyCount, error)
}

// AnalyticsService tracks visits and aggregates them for reporting.
type AnalyticsService interface {
	// Track records a visit. It must not block the request path: the
	// write happens asynchronously and duplicate visits from the same
	// visitor within the dedup window are suppressed.
	Track(ctx context.Context, input TrackEventInput)
	Stats(ctx context.Context, days int) (*Stats, error)
}

// EventSink persists one tracked event; implemented by the analytics
// service and consumed by the dispatcher workers.
type EventSink interface {
	Process(ctx context.Context, input TrackEventInput) error
}
