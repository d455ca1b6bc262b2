package outbox

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
)

// Prune deletes events processed before threshold and returns how many rows
// were removed. Pending events are never touched. It is meant for an
// external cron job, not an in-process goroutine.
func Prune(ctx context.Context, q postgres.Querier, threshold time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete("entry_events").
		Where(sq.NotEq{"processed_at": nil}).
		Where(sq.Lt{"processed_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("outbox.Prune: %w", err)
	}
	return tag.RowsAffected(), nil
}
