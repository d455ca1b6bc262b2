// Package observability holds the process-wide Prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensIssued counts custom tokens handed out, by mode (register|login).
	TokensIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chaos_tokens_issued_total",
		Help: "Total number of custom tokens issued",
	}, []string{"mode"})

	// EntryEventsConsumed counts change notifications taken from a source.
	EntryEventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chaos_entry_events_consumed_total",
		Help: "Total number of entry change notifications consumed",
	}, []string{"source", "kind"})

	// FeedProjections counts community feed writes by action (upsert|delete|skip|backfill).
	FeedProjections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chaos_feed_projections_total",
		Help: "Total number of community feed projection actions",
	}, []string{"action"})

	// FeedHandlerFailures counts handler failures swallowed by the event sink.
	FeedHandlerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chaos_feed_handler_failures_total",
		Help: "Total number of feed handler failures that were logged and discarded",
	}, []string{"kind"})

	// BackfillRuns counts administrative job runs by job and outcome.
	BackfillRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chaos_backfill_runs_total",
		Help: "Total number of backfill job runs",
	}, []string{"job", "outcome"})
)
