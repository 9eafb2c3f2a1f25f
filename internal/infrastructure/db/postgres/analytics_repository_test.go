package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

func insertEvent(t *testing.T, repo *AnalyticsRepository, typ domain.EventType, slug string) {
	t.Helper()
	require.NoError(t, repo.Insert(context.Background(), &domain.AnalyticsEvent{
		Type: typ,
		Slug: slug,
		IP:   "10.0.0.1",
	}))
}

func TestAnalyticsRepository_CountByType(t *testing.T) {
	repo := NewAnalyticsRepository(newTestDB(t))
	ctx := context.Background()

	insertEvent(t, repo, domain.EventPageView, "home")
	insertEvent(t, repo, domain.EventPageView, "about")
	insertEvent(t, repo, domain.EventProjectView, "villa")

	since := time.Now().UTC().Add(-time.Hour)

	pages, err := repo.CountByType(ctx, domain.EventPageView, since)
	require.NoError(t, err)
	require.EqualValues(t, 2, pages)

	projects, err := repo.CountByType(ctx, domain.EventProjectView, since)
	require.NoError(t, err)
	require.EqualValues(t, 1, projects)

	// A window starting in the future matches nothing.
	none, err := repo.CountByType(ctx, domain.EventPageView, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.Zero(t, none)
}

func TestAnalyticsRepository_TopSlugs(t *testing.T) {
	repo := NewAnalyticsRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		insertEvent(t, repo, domain.EventPageView, "home")
	}
	for i := 0; i < 2; i++ {
		insertEvent(t, repo, domain.EventPageView, "about")
	}
	insertEvent(t, repo, domain.EventPageView, "contact")

	since := time.Now().UTC().Add(-time.Hour)
	top, err := repo.TopSlugs(ctx, domain.EventPageView, since, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "home", top[0].Slug)
	require.EqualValues(t, 3, top[0].Views)
	require.Equal(t, "about", top[1].Slug)
	require.EqualValues(t, 2, top[1].Views)
}

func TestAnalyticsRepository_DailyCounts(t *testing.T) {
	repo := NewAnalyticsRepository(newTestDB(t))
	ctx := context.Background()

	insertEvent(t, repo, domain.EventPageView, "home")
	insertEvent(t, repo, domain.EventProjectView, "villa")

	daily, err := repo.DailyCounts(ctx, 7)
	require.NoError(t, err)
	require.Len(t, daily, 7)

	// Days are oldest-first and zero-filled; today holds both events.
	today := time.Now().UTC().Format("2006-01-02")
	require.Equal(t, today, daily[6].Date)
	require.EqualValues(t, 2, daily[6].Views)
	for _, day := range daily[:6] {
		require.Zero(t, day.Views)
	}
}
