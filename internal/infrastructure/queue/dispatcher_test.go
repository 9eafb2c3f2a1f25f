package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

type collectingSink struct {
	mu     sync.Mutex
	events []ports.TrackEventInput
	done   chan struct{}
	want   int
}

func newCollectingSink(want int) *collectingSink {
	return &collectingSink{done: make(chan struct{}), want: want}
}

func (s *collectingSink) Process(ctx context.Context, input ports.TrackEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, input)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCollectingSink(20)
	d := NewDispatcher(4, zerolog.Nop())
	d.Start(ctx, sink)

	slugs := []string{"home", "about", "villa", "contact"}
	for i := 0; i < 20; i++ {
		d.Enqueue(ports.TrackEventInput{
			Type: domain.EventPageView,
			Slug: slugs[i%len(slugs)],
		})
	}

	select {
	case <-sink.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for events to drain")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.events) != 20 {
		t.Fatalf("processed %d events, want 20", len(sink.events))
	}
}

func TestDispatcher_StopDrainsBufferedEvents(t *testing.T) {
	sink := newCollectingSink(20)
	d := NewDispatcher(4, zerolog.Nop())
	d.Start(context.Background(), sink)

	for i := 0; i < 20; i++ {
		d.Enqueue(ports.TrackEventInput{
			Type: domain.EventPageView,
			Slug: "home",
		})
	}

	// Stop blocks until the workers have flushed their channels.
	d.Stop()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.events) != 20 {
		t.Fatalf("processed %d events before Stop returned, want 20", len(sink.events))
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, zerolog.Nop())

	for _, slug := range []string{"home", "villa-serenity", "about", ""} {
		first := d.shardIndex(slug)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(slug); got != first {
				t.Fatalf("slug %q: shard %d then %d", slug, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("slug %q: shard %d out of range", slug, first)
		}
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
