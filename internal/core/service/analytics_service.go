package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/api/metrics"
	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

const (
	topSlugLimit    = 10
	dailySeriesDays = 7
	defaultWindow   = 30
)

// EventQueue hands tracked events to the asynchronous pipeline.
type EventQueue interface {
	Enqueue(event ports.TrackEventInput)
}

// VisitDeduper suppresses repeat visits from the same visitor within a
// time window. A nil VisitDeduper disables deduplication.
type VisitDeduper interface {
	IsDuplicate(ctx context.Context, slug, ip string) (bool, error)
	Mark(ctx context.Context, slug, ip string) error
}

// AnalyticsService records visits off the request path and aggregates them
// for the admin dashboard.
type AnalyticsService struct {
	repo        ports.AnalyticsRepository
	submissions ports.SubmissionRepository
	queue       EventQueue
	dedup       VisitDeduper
	logger      zerolog.Logger
}

func NewAnalyticsService(repo ports.AnalyticsRepository, submissions ports.SubmissionRepository, queue EventQueue, dedup VisitDeduper, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, submissions: submissions, queue: queue, dedup: dedup, logger: logger}
}

// Track enqueues a visit for asynchronous persistence. Repeat visits from
// the same visitor to the same slug inside the dedup window are dropped.
// Dedup errors fail open: a broken redis must not lose traffic data.
func (s *AnalyticsService) Track(ctx context.Context, input ports.TrackEventInput) {
	if s.dedup != nil && input.IP != "" {
		dup, err := s.dedup.IsDuplicate(ctx, input.Slug, input.IP)
		if err != nil {
			s.logger.Warn().Err(err).Str("slug", input.Slug).Msg("visit dedup check failed")
		} else if dup {
			metrics.ViewsDedupTotal.WithLabelValues("hit").Inc()
			return
		}
		metrics.ViewsDedupTotal.WithLabelValues("miss").Inc()
		if err := s.dedup.Mark(ctx, input.Slug, input.IP); err != nil {
			s.logger.Warn().Err(err).Str("slug", input.Slug).Msg("visit dedup mark failed")
		}
	}

	s.queue.Enqueue(input)
}

// Process persists one event; called by the dispatcher workers.
func (s *AnalyticsService) Process(ctx context.Context, input ports.TrackEventInput) error {
	err := s.repo.Insert(ctx, &domain.AnalyticsEvent{
		Type:      input.Type,
		Slug:      input.Slug,
		UserAgent: input.UserAgent,
		Referrer:  input.Referrer,
		IP:        input.IP,
	})
	if err != nil {
		return err
	}
	metrics.ViewsRecordedTotal.WithLabelValues(string(input.Type)).Inc()
	return nil
}

// Stats aggregates the last `days` days of events plus the submission
// inbox counters. days <= 0 falls back to a 30-day window.
func (s *AnalyticsService) Stats(ctx context.Context, days int) (*ports.Stats, error) {
	if days <= 0 {
		days = defaultWindow
	}
	since := startOfWindow(days)

	pageViews, err := s.repo.CountByType(ctx, domain.EventPageView, since)
	if err != nil {
		return nil, err
	}
	projectViews, err := s.repo.CountByType(ctx, domain.EventProjectView, since)
	if err != nil {
		return nil, err
	}
	topPages, err := s.repo.TopSlugs(ctx, domain.EventPageView, since, topSlugLimit)
	if err != nil {
		return nil, err
	}
	topProjects, err := s.repo.TopSlugs(ctx, domain.EventProjectView, since, topSlugLimit)
	if err != nil {
		return nil, err
	}
	daily, err := s.repo.DailyCounts(ctx, dailySeriesDays)
	if err != nil {
		return nil, err
	}
	total, unread, err := s.submissions.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.Stats{
		PageViews:    pageViews,
		ProjectViews: projectViews,
		TopPages:     topPages,
		TopProjects:  topProjects,
		DailyViews:   daily,
		Submissions:  ports.SubmissionCounts{Total: total, Unread: unread},
	}
	return stats, nil
}

func startOfWindow(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days)
}
