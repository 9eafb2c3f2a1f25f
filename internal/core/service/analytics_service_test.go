package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

type stubAnalyticsRepo struct {
	insertFn      func(ctx context.Context, event *domain.AnalyticsEvent) error
	countByTypeFn func(ctx context.Context, t domain.EventType, since time.Time) (int64, error)
	topSlugsFn    func(ctx context.Context, t domain.EventType, since time.Time, limit int) ([]ports.SlugCount, error)
	dailyCountsFn func(ctx context.Context, days int) ([]ports.DailyCount, error)
}

func (s *stubAnalyticsRepo) Insert(ctx context.Context, event *domain.AnalyticsEvent) error {
	return s.insertFn(ctx, event)
}
func (s *stubAnalyticsRepo) CountByType(ctx context.Context, t domain.EventType, since time.Time) (int64, error) {
	return s.countByTypeFn(ctx, t, since)
}
func (s *stubAnalyticsRepo) TopSlugs(ctx context.Context, t domain.EventType, since time.Time, limit int) ([]ports.SlugCount, error) {
	return s.topSlugsFn(ctx, t, since, limit)
}
func (s *stubAnalyticsRepo) DailyCounts(ctx context.Context, days int) ([]ports.DailyCount, error) {
	return s.dailyCountsFn(ctx, days)
}

type stubSubmissionRepo struct {
	countFn func(ctx context.Context) (int64, int64, error)
}

func (s *stubSubmissionRepo) List(ctx context.Context) ([]domain.FormSubmission, error) {
	return nil, nil
}
func (s *stubSubmissionRepo) FindByID(ctx context.Context, id string) (*domain.FormSubmission, error) {
	return nil, domain.ErrSubmissionNotFound
}
func (s *stubSubmissionRepo) Create(ctx context.Context, sub *domain.FormSubmission) (*domain.FormSubmission, error) {
	return sub, nil
}
func (s *stubSubmissionRepo) SetRead(ctx context.Context, id string, read bool) (*domain.FormSubmission, error) {
	return nil, domain.ErrSubmissionNotFound
}
func (s *stubSubmissionRepo) Delete(ctx context.Context, id string) error { return nil }
func (s *stubSubmissionRepo) Count(ctx context.Context) (int64, int64, error) {
	return s.countFn(ctx)
}

type recordingQueue struct {
	events []ports.TrackEventInput
}

func (q *recordingQueue) Enqueue(event ports.TrackEventInput) {
	q.events = append(q.events, event)
}

type mapDeduper struct {
	seen map[string]bool
	err  error
}

func (d *mapDeduper) IsDuplicate(ctx context.Context, slug, ip string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.seen[slug+"|"+ip], nil
}

func (d *mapDeduper) Mark(ctx context.Context, slug, ip string) error {
	if d.err != nil {
		return d.err
	}
	d.seen[slug+"|"+ip] = true
	return nil
}

func TestAnalyticsService_Track_Dedup(t *testing.T) {
	queue := &recordingQueue{}
	dedup := &mapDeduper{seen: map[string]bool{}}
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, &stubSubmissionRepo{}, queue, dedup, zerolog.Nop())

	visit := ports.TrackEventInput{Type: domain.EventPageView, Slug: "home", IP: "10.0.0.1"}
	svc.Track(context.Background(), visit)
	svc.Track(context.Background(), visit)

	if len(queue.events) != 1 {
		t.Fatalf("queued %d events, want 1 (repeat visit suppressed)", len(queue.events))
	}

	// Another visitor to the same page is not a duplicate.
	svc.Track(context.Background(), ports.TrackEventInput{Type: domain.EventPageView, Slug: "home", IP: "10.0.0.2"})
	if len(queue.events) != 2 {
		t.Fatalf("queued %d events, want 2", len(queue.events))
	}

	// Same visitor, different page.
	svc.Track(context.Background(), ports.TrackEventInput{Type: domain.EventPageView, Slug: "about", IP: "10.0.0.1"})
	if len(queue.events) != 3 {
		t.Fatalf("queued %d events, want 3", len(queue.events))
	}
}

// A broken dedup store must not drop traffic.
func TestAnalyticsService_Track_DedupFailsOpen(t *testing.T) {
	queue := &recordingQueue{}
	dedup := &mapDeduper{err: errors.New("redis down")}
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, &stubSubmissionRepo{}, queue, dedup, zerolog.Nop())

	svc.Track(context.Background(), ports.TrackEventInput{Type: domain.EventPageView, Slug: "home", IP: "10.0.0.1"})
	if len(queue.events) != 1 {
		t.Fatalf("queued %d events, want 1 despite dedup failure", len(queue.events))
	}
}

func TestAnalyticsService_Track_NilDeduper(t *testing.T) {
	queue := &recordingQueue{}
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, &stubSubmissionRepo{}, queue, nil, zerolog.Nop())

	visit := ports.TrackEventInput{Type: domain.EventPageView, Slug: "home", IP: "10.0.0.1"}
	svc.Track(context.Background(), visit)
	svc.Track(context.Background(), visit)
	if len(queue.events) != 2 {
		t.Fatalf("queued %d events, want 2 with dedup disabled", len(queue.events))
	}
}

func TestAnalyticsService_Process_Persists(t *testing.T) {
	var inserted *domain.AnalyticsEvent
	repo := &stubAnalyticsRepo{
		insertFn: func(ctx context.Context, event *domain.AnalyticsEvent) error {
			inserted = event
			return nil
		},
	}
	svc := NewAnalyticsService(repo, &stubSubmissionRepo{}, &recordingQueue{}, nil, zerolog.Nop())

	err := svc.Process(context.Background(), ports.TrackEventInput{
		Type: domain.EventProjectView, Slug: "villa-serenity", UserAgent: "test", IP: "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("process error: %v", err)
	}
	if inserted == nil || inserted.Slug != "villa-serenity" || inserted.Type != domain.EventProjectView {
		t.Fatalf("inserted = %+v", inserted)
	}
}

func TestAnalyticsService_Stats(t *testing.T) {
	var gotSince time.Time
	repo := &stubAnalyticsRepo{
		countByTypeFn: func(ctx context.Context, typ domain.EventType, since time.Time) (int64, error) {
			gotSince = since
			if typ == domain.EventPageView {
				return 120, nil
			}
			return 45, nil
		},
		topSlugsFn: func(ctx context.Context, typ domain.EventType, since time.Time, limit int) ([]ports.SlugCount, error) {
			if limit != 10 {
				t.Errorf("limit = %d, want 10", limit)
			}
			return []ports.SlugCount{{Slug: "home", Views: 80}}, nil
		},
		dailyCountsFn: func(ctx context.Context, days int) ([]ports.DailyCount, error) {
			if days != 7 {
				t.Errorf("daily series days = %d, want 7", days)
			}
			return []ports.DailyCount{{Date: "2026-09-01", Views: 12}}, nil
		},
	}
	subs := &stubSubmissionRepo{countFn: func(ctx context.Context) (int64, int64, error) { return 9, 4, nil }}
	svc := NewAnalyticsService(repo, subs, &recordingQueue{}, nil, zerolog.Nop())

	stats, err := svc.Stats(context.Background(), 0)
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if stats.PageViews != 120 || stats.ProjectViews != 45 {
		t.Errorf("views = %d/%d", stats.PageViews, stats.ProjectViews)
	}
	if stats.Submissions.Total != 9 || stats.Submissions.Unread != 4 {
		t.Errorf("submissions = %+v", stats.Submissions)
	}

	// days <= 0 falls back to the 30-day window.
	wantSince := time.Now().UTC().AddDate(0, 0, -30)
	if diff := gotSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Errorf("since = %v, want ~%v", gotSince, wantSince)
	}
}
