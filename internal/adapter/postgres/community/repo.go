// Package community persists community feed posts.
package community

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// Repo provides community_feed persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new community feed repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Upsert writes the post, replacing every projected field when a post with
// the same id already exists.
func (r *Repo) Upsert(ctx context.Context, p domain.CommunityPost) error {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	miniWins := p.MiniWins
	if miniWins == nil {
		miniWins = []string{}
	}

	query, args, err := postgres.Builder().
		Insert("community_feed").
		Columns(
			"id", "chaos_entry_id", "user_id", "username", "anonymous_username", "title",
			"content", "description", "chaos_level", "mood", "tags", "mini_wins", "is_anonymous",
			"created_at", "support_count", "twin_count", "view_count", "is_reported", "is_moderated",
		).
		Values(
			p.ID, p.ChaosEntryID, p.UserID, p.Username, p.AnonymousUsername, p.Title,
			p.Content, p.Description, p.ChaosLevel, p.Mood, tags, miniWins, p.IsAnonymous,
			p.CreatedAt, p.SupportCount, p.TwinCount, p.ViewCount, p.IsReported, p.IsModerated,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			chaos_entry_id = EXCLUDED.chaos_entry_id,
			user_id = EXCLUDED.user_id,
			username = EXCLUDED.username,
			anonymous_username = EXCLUDED.anonymous_username,
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			description = EXCLUDED.description,
			chaos_level = EXCLUDED.chaos_level,
			mood = EXCLUDED.mood,
			tags = EXCLUDED.tags,
			mini_wins = EXCLUDED.mini_wins,
			is_anonymous = EXCLUDED.is_anonymous,
			created_at = EXCLUDED.created_at,
			support_count = EXCLUDED.support_count,
			twin_count = EXCLUDED.twin_count,
			view_count = EXCLUDED.view_count,
			is_reported = EXCLUDED.is_reported,
			is_moderated = EXCLUDED.is_moderated`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "community_post", p.ID.String())
	}
	return nil
}

// Exists reports whether a post with the given id is present.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From("community_feed").
		Where(sq.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "community_post", id.String())
	}
	return exists, nil
}

// Delete removes the post and reports whether a row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Delete("community_feed").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "community_post", id.String())
	}
	return tag.RowsAffected() > 0, nil
}

// Get returns one post.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.CommunityPost, error) {
	query, args, err := postgres.Builder().
		Select(
			"id", "chaos_entry_id", "user_id", "username", "anonymous_username", "title",
			"content", "description", "chaos_level", "mood", "tags", "mini_wins", "is_anonymous",
			"created_at", "support_count", "twin_count", "view_count", "is_reported", "is_moderated",
		).
		From("community_feed").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p domain.CommunityPost
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.ChaosEntryID, &p.UserID, &p.Username, &p.AnonymousUsername, &p.Title,
		&p.Content, &p.Description, &p.ChaosLevel, &p.Mood, &p.Tags, &p.MiniWins, &p.IsAnonymous,
		&p.CreatedAt, &p.SupportCount, &p.TwinCount, &p.ViewCount, &p.IsReported, &p.IsModerated,
	)
	if err != nil {
		return nil, postgres.MapError(err, "community_post", id.String())
	}
	return &p, nil
}
