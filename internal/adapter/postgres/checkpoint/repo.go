// Package checkpoint stores resumable cursors for long-running jobs.
package checkpoint

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// Repo provides job_checkpoints persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new checkpoint repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Get returns the checkpoint of job or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, job string) (*domain.JobCheckpoint, error) {
	query, args, err := postgres.Builder().
		Select("job", "cursor_id", "processed", "shared", "updated_at").
		From("job_checkpoints").
		Where(sq.Eq{"job": job}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c domain.JobCheckpoint
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&c.Job, &c.CursorID, &c.Processed, &c.Shared, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "checkpoint", job)
	}
	return &c, nil
}

// Save creates or replaces the checkpoint of c.Job.
func (r *Repo) Save(ctx context.Context, c domain.JobCheckpoint) error {
	query, args, err := postgres.Builder().
		Insert("job_checkpoints").
		Columns("job", "cursor_id", "processed", "shared", "updated_at").
		Values(c.Job, c.CursorID, c.Processed, c.Shared, c.UpdatedAt).
		Suffix(`ON CONFLICT (job) DO UPDATE SET
			cursor_id = EXCLUDED.cursor_id,
			processed = EXCLUDED.processed,
			shared = EXCLUDED.shared,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "checkpoint", c.Job)
	}
	return nil
}

// Delete removes the checkpoint of job. Deleting a missing checkpoint is not an error.
func (r *Repo) Delete(ctx context.Context, job string) error {
	query, args, err := postgres.Builder().
		Delete("job_checkpoints").
		Where(sq.Eq{"job": job}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "checkpoint", job)
	}
	return nil
}
