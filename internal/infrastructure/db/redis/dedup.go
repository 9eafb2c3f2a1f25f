package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const visitTTL = 30 * time.Minute

// VisitDeduper suppresses repeat analytics events from the same visitor
// within visitTTL. Key format: visit:<slug>:<ip>
type VisitDeduper struct {
	client *redis.Client
}

// NewVisitDeduper creates a VisitDeduper wrapping the given Redis client.
func NewVisitDeduper(client *redis.Client) *VisitDeduper {
	return &VisitDeduper{client: client}
}

// IsDuplicate reports whether this visitor already viewed this slug within
// the dedup window.
func (d *VisitDeduper) IsDuplicate(ctx context.Context, slug, ip string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(slug, ip)).Result()
	if err != nil {
		return false, fmt.Errorf("visit dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the visit (expires after visitTTL).
func (d *VisitDeduper) Mark(ctx context.Context, slug, ip string) error {
	return d.client.Set(ctx, d.key(slug, ip), "1", visitTTL).Err()
}

func (d *VisitDeduper) key(slug, ip string) string {
	return fmt.Sprintf("visit:%s:%s", slug, ip)
}
