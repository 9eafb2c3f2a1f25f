// Package metrics defines the custom Prometheus metrics for the Arsitek
// Studio CMS API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level metrics come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arsitek_cms"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ViewsRecordedTotal counts analytics events persisted by the pipeline.
// Label:
//   - type: "PAGE_VIEW" or "PROJECT_VIEW"
var ViewsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_recorded_total",
		Help:      "Total number of analytics events written to the store.",
	},
	[]string{"type"},
)

// ViewsDedupTotal counts visitor-dedup decisions.
// Label:
//   - result: "hit" (repeat visit, dropped) or "miss" (new visit, recorded)
var ViewsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_dedup_total",
		Help:      "Total number of visit deduplication checks, by result.",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks pending events per dispatcher worker.
// Label:
//   - worker_id: numeric worker index
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of analytics events pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// SubmissionsTotal counts accepted contact-form submissions.
var SubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of contact form submissions accepted.",
	},
)
