package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arsitekstudio/cms-api/internal/api/metrics"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes analytics events to a fixed set of workers using
// consistent hashing on the slug, keeping per-page event ordering while
// taking the database write off the request path.
type Dispatcher struct {
	workers []chan ports.TrackEventInput
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. The sink is supplied at
// Start so the producer side can be wired to the dispatcher first.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.TrackEventInput, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.TrackEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers run until Stop is called
// or ctx is cancelled; only Stop drains buffered events first.
func (d *Dispatcher) Start(ctx context.Context, sink ports.EventSink) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch, sink)
	}
}

// Stop closes the worker channels and blocks until every buffered event
// has been processed. Enqueue must not be called after Stop.
func (d *Dispatcher) Stop() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Enqueue sends an event to the worker responsible for its slug. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.TrackEventInput) {
	i := d.shardIndex(event.Slug)
	d.workers[i] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a slug deterministically to a worker index.
func (d *Dispatcher) shardIndex(slug string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(slug))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.TrackEventInput, sink ports.EventSink) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := sink.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("slug", event.Slug).
					Int("worker_id", id).
					Msg("analytics event processing failed")
			}
			metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
