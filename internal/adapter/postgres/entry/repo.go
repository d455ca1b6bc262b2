// Package entry reads chaos entries. Entries are written by the client API;
// this service only observes them.
package entry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// Repo provides read access to chaos_entries.
type Repo struct {
	db postgres.DB
}

// New creates a new entry repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var entryColumns = []string{
	"id", "user_id", "title", "content", "chaos_level", "mood", "tags", "mini_wins",
	"share_to_feed", "created_at", "updated_at",
}

// GetByID returns a single entry.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Select(entryColumns...).
		From("chaos_entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id.String())
	}
	return e, nil
}

// ListByUserPage returns up to limit entries of userID with id greater than
// after, ordered by id.
func (r *Repo) ListByUserPage(ctx context.Context, userID, after uuid.UUID, limit int) ([]domain.Entry, error) {
	query, args, err := postgres.Builder().
		Select(entryColumns...).
		From("chaos_entries").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries of user %s: %w", userID, err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0, limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Content, &e.ChaosLevel, &e.Mood, &e.Tags, &e.MiniWins,
		&e.ShareToFeed, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
