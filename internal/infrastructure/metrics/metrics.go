// Package metrics exposes Prometheus collectors for the reservation
// engine's background workers, scraped at /metrics alongside the REST API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outbox tracks the publisher's per-sweep drain results.
var Outbox = struct {
	RowsClaimed   prometheus.Counter
	RowsPublished prometheus.Counter
	RowsFailed    prometheus.Counter
}{
	RowsClaimed: promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reservation_engine",
		Subsystem: "outbox",
		Name:      "rows_claimed_total",
		Help:      "Outbox rows claimed by the publisher across all sweeps.",
	}),
	RowsPublished: promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reservation_engine",
		Subsystem: "outbox",
		Name:      "rows_published_total",
		Help:      "Outbox rows successfully published.",
	}),
	RowsFailed: promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reservation_engine",
		Subsystem: "outbox",
		Name:      "rows_failed_total",
		Help:      "Outbox rows that failed to publish and were left for the next sweep.",
	}),
}

// Reaper tracks the expiry/reminder sweep results.
var Reaper = struct {
	ExpiredTotal  prometheus.Counter
	RemindedTotal prometheus.Counter
}{
	ExpiredTotal: promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reservation_engine",
		Subsystem: "reaper",
		Name:      "expired_total",
		Help:      "Reservations transitioned from PENDING to EXPIRED by the reaper.",
	}),
	RemindedTotal: promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reservation_engine",
		Subsystem: "reaper",
		Name:      "reminded_total",
		Help:      "reservation.reminder events emitted by the reaper.",
	}),
}
