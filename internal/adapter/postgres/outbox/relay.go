// Package outbox relays entry change notifications recorded by the
// chaos_entries trigger to the event dispatcher.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// Channel is the NOTIFY channel the trigger signals on.
const Channel = "entry_events"

// SourceName labels events relayed from PostgreSQL.
const SourceName = "postgres"

type dispatcher interface {
	Dispatch(ctx context.Context, source string, ev domain.EntryEvent)
}

// Relay claims pending entry_events rows, dispatches them and marks them
// processed. Several relays may run against the same database; rows are
// claimed with FOR UPDATE SKIP LOCKED so each is handed out once.
type Relay struct {
	pool         *pgxpool.Pool
	dispatcher   dispatcher
	log          *slog.Logger
	batchSize    int
	pollInterval time.Duration
}

// NewRelay creates a new outbox relay.
func NewRelay(pool *pgxpool.Pool, d dispatcher, logger *slog.Logger, batchSize int, pollInterval time.Duration) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &Relay{
		pool:         pool,
		dispatcher:   d,
		log:          logger.With("component", "outbox_relay"),
		batchSize:    batchSize,
		pollInterval: pollInterval,
	}
}

// Run drains the outbox until ctx is cancelled. It wakes on a notification
// or after the poll interval, whichever comes first. A lost listener
// connection degrades to polling until it can be re-established.
func (r *Relay) Run(ctx context.Context) error {
	r.log.InfoContext(ctx, "outbox relay started",
		slog.Int("batch_size", r.batchSize),
		slog.Duration("poll_interval", r.pollInterval),
	)

	var conn *pgxpool.Conn
	defer func() {
		if conn != nil {
			conn.Release()
		}
	}()

	for {
		if err := r.Drain(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			r.log.ErrorContext(ctx, "outbox drain failed", slog.String("error", err.Error()))
		}

		if conn == nil {
			c, err := r.listen(ctx)
			if err != nil && ctx.Err() == nil {
				r.log.WarnContext(ctx, "outbox listener unavailable, polling", slog.String("error", err.Error()))
			}
			conn = c
		}

		if err := r.wait(ctx, conn); err != nil {
			if ctx.Err() != nil {
				break
			}
			r.log.WarnContext(ctx, "outbox listener lost", slog.String("error", err.Error()))
			conn.Release()
			conn = nil
		}
	}

	r.log.InfoContext(ctx, "outbox relay stopped")
	return nil
}

func (r *Relay) listen(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire listener connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
		conn.Release()
		return nil, fmt.Errorf("listen %s: %w", Channel, err)
	}
	return conn, nil
}

// wait blocks until a notification arrives, the poll interval elapses or
// ctx is done. It returns an error only when the listener connection failed.
func (r *Relay) wait(ctx context.Context, conn *pgxpool.Conn) error {
	if conn == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.pollInterval):
			return nil
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, r.pollInterval)
	defer cancel()

	n, err := conn.Conn().WaitForNotification(waitCtx)
	switch {
	case err == nil:
		r.log.DebugContext(ctx, "outbox notified", slog.String("event_id", n.Payload))
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		return nil
	default:
		return err
	}
}

// Drain processes batches until the outbox has no pending rows.
func (r *Relay) Drain(ctx context.Context) error {
	for {
		n, err := r.ProcessBatch(ctx)
		if err != nil {
			return err
		}
		if n < r.batchSize {
			return nil
		}
	}
}

// ProcessBatch claims up to one batch of pending rows, dispatches them in id
// order and marks them processed in the same transaction. It returns the
// number of rows claimed.
//
// Handlers run on the pool, outside the claiming transaction, so a handler
// failure cannot roll back the acknowledgement.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("outbox.ProcessBatch: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := claimPending(ctx, tx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("outbox.ProcessBatch: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.id)

		ev, err := row.event()
		if err != nil {
			r.log.ErrorContext(ctx, "malformed outbox row skipped",
				slog.Int64("event_id", row.id),
				slog.String("error", err.Error()),
			)
			continue
		}
		r.dispatcher.Dispatch(ctx, SourceName, ev)
	}

	if err := markProcessed(ctx, tx, ids); err != nil {
		return 0, fmt.Errorf("outbox.ProcessBatch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("outbox.ProcessBatch: commit: %w", err)
	}

	r.log.DebugContext(ctx, "outbox batch relayed", slog.Int("count", len(ids)))
	return len(ids), nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

type pendingRow struct {
	id         int64
	kind       string
	userID     uuid.UUID
	entryID    uuid.UUID
	before     []byte
	after      []byte
	occurredAt time.Time
}

func claimPending(ctx context.Context, q postgres.Querier, limit int) ([]pendingRow, error) {
	query, args, err := postgres.Builder().
		Select("id", "kind", "user_id", "entry_id", "before", "after", "occurred_at").
		From("entry_events").
		Where(sq.Eq{"processed_at": nil}).
		OrderBy("id").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("claim pending events: %w", err)
	}
	defer rows.Close()

	var out []pendingRow
	for rows.Next() {
		var p pendingRow
		if err := rows.Scan(&p.id, &p.kind, &p.userID, &p.entryID, &p.before, &p.after, &p.occurredAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

func markProcessed(ctx context.Context, q postgres.Querier, ids []int64) error {
	query, args, err := postgres.Builder().
		Update("entry_events").
		Set("processed_at", sq.Expr("now()")).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark events processed: %w", err)
	}
	return nil
}

func (p pendingRow) event() (domain.EntryEvent, error) {
	ev := domain.EntryEvent{
		ID:         strconv.FormatInt(p.id, 10),
		Kind:       domain.EntryEventKind(p.kind),
		UserID:     p.userID,
		EntryID:    p.entryID,
		OccurredAt: p.occurredAt,
	}

	var err error
	if ev.Before, err = decodeSnapshot(p.before); err != nil {
		return ev, fmt.Errorf("decode before: %w", err)
	}
	if ev.After, err = decodeSnapshot(p.after); err != nil {
		return ev, fmt.Errorf("decode after: %w", err)
	}
	return ev, nil
}

func decodeSnapshot(raw []byte) (*domain.Entry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var e domain.Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
