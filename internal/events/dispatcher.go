// Package events routes entry change notifications to the feed mirror.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/observability"
)

type feedMirror interface {
	OnEntryCreated(ctx context.Context, ev domain.EntryEvent) error
	OnEntryUpdated(ctx context.Context, ev domain.EntryEvent) error
	OnEntryDeleted(ctx context.Context, ev domain.EntryEvent) error
}

// Dispatcher hands each event to the matching mirror handler through the Sink.
// Dispatch never fails: the caller acknowledges the event afterwards.
type Dispatcher struct {
	mirror feedMirror
	sink   *Sink
	log    *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(mirror feedMirror, sink *Sink, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		mirror: mirror,
		sink:   sink,
		log:    logger.With("component", "event_dispatcher"),
	}
}

// Dispatch routes ev by kind. source labels the consumed-events metric.
func (d *Dispatcher) Dispatch(ctx context.Context, source string, ev domain.EntryEvent) {
	observability.EntryEventsConsumed.WithLabelValues(source, string(ev.Kind)).Inc()

	var handle func(context.Context, domain.EntryEvent) error
	switch ev.Kind {
	case domain.EntryCreated:
		handle = d.mirror.OnEntryCreated
	case domain.EntryUpdated:
		handle = d.mirror.OnEntryUpdated
	case domain.EntryDeleted:
		handle = d.mirror.OnEntryDeleted
	default:
		d.sink.Report(ctx, ev, fmt.Errorf("unknown event kind %q", ev.Kind))
		return
	}

	if d.sink.Run(ctx, ev, handle) {
		d.log.DebugContext(ctx, "event handled",
			slog.String("event_id", ev.ID),
			slog.String("kind", string(ev.Kind)),
			slog.String("entry_id", ev.EntryID.String()),
		)
	}
}
