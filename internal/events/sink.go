package events

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/observability"
)

// Sink is where feed handler failures end. A failure is logged, counted and
// dropped; nothing is returned to the event source, so a bad event never
// blocks or redelivers.
type Sink struct {
	log *slog.Logger
}

// NewSink creates a Sink.
func NewSink(logger *slog.Logger) *Sink {
	return &Sink{log: logger.With("component", "event_sink")}
}

// Run calls fn for ev and absorbs both its error and any panic.
// It reports whether fn completed without failure.
func (s *Sink) Run(ctx context.Context, ev domain.EntryEvent, fn func(context.Context, domain.EntryEvent) error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.Report(ctx, ev, fmt.Errorf("panic: %v", r))
			s.log.ErrorContext(ctx, "handler panic stack", slog.String("stack", string(debug.Stack())))
			ok = false
		}
	}()

	if err := fn(ctx, ev); err != nil {
		s.Report(ctx, ev, err)
		return false
	}
	return true
}

// Report records a failure for ev.
func (s *Sink) Report(ctx context.Context, ev domain.EntryEvent, err error) {
	observability.FeedHandlerFailures.WithLabelValues(string(ev.Kind)).Inc()
	s.log.ErrorContext(ctx, "feed handler failed",
		slog.String("event_id", ev.ID),
		slog.String("kind", string(ev.Kind)),
		slog.String("user_id", ev.UserID.String()),
		slog.String("entry_id", ev.EntryID.String()),
		slog.String("error", err.Error()),
	)
}
