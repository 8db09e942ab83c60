// Package metrics exposes Prometheus metrics for the ticket pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicketRuns counts generated tickets by type and status.
	TicketRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketforge_ticket_runs_total",
			Help: "Generated tickets by type and status",
		},
		[]string{"type", "status"},
	)

	// PicksUpserted counts persisted pick records.
	PicksUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketforge_picks_upserted_total",
			Help: "Flattened picks written to the store",
		},
	)

	// PickUpsertFailures counts records dropped after the per-record retry.
	PickUpsertFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketforge_pick_upsert_failures_total",
			Help: "Pick records dropped after batch and per-record upsert failed",
		},
	)

	// PicksSettled counts grading outcomes.
	PicksSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketforge_picks_settled_total",
			Help: "Settled picks by outcome",
		},
		[]string{"outcome"},
	)

	// GenerationDuration observes end-to-end generation time per run.
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ticketforge_generation_duration_seconds",
			Help:    "End-to-end ticket generation duration",
			Buckets: prometheus.DefBuckets,
		},
	)
)
