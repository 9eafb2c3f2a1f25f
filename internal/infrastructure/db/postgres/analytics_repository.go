package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// AnalyticsRepository is the append-only event store plus its aggregation
// queries.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Insert(ctx context.Context, event *domain.AnalyticsEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

func (r *AnalyticsRepository) CountByType(ctx context.Context, t domain.EventType, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.AnalyticsEvent{}).
		Where("type = ? AND created_at >= ?", t, since).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepository) TopSlugs(ctx context.Context, t domain.EventType, since time.Time, limit int) ([]ports.SlugCount, error) {
	var rows []ports.SlugCount
	err := r.db.WithContext(ctx).Model(&domain.AnalyticsEvent{}).
		Select("slug, COUNT(*) AS views").
		Where("type = ? AND created_at >= ?", t, since).
		Group("slug").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top slugs: %w", err)
	}
	return rows, nil
}

// DailyCounts returns one row per calendar day (UTC) for the last `days`
// days, oldest first, including zero days. One count query per day keeps
// the SQL portable between PostgreSQL and the SQLite used in tests.
func (r *AnalyticsRepository) DailyCounts(ctx context.Context, days int) ([]ports.DailyCount, error) {
	out := make([]ports.DailyCount, 0, days)
	now := time.Now().UTC()

	for i := days - 1; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)

		var n int64
		err := r.db.WithContext(ctx).Model(&domain.AnalyticsEvent{}).
			Where("created_at >= ? AND created_at < ?", day, next).
			Count(&n).Error
		if err != nil {
			return nil, fmt.Errorf("daily counts: %w", err)
		}

		out = append(out, ports.DailyCount{Date: day.Format("2006-01-02"), Views: n})
	}
	return out, nil
}
