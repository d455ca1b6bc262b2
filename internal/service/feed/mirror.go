// Package feed keeps community_feed in sync with shared chaos entries.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/observability"
)

type userReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type postStore interface {
	Upsert(ctx context.Context, p domain.CommunityPost) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Mirror reacts to entry changes. A post exists exactly when its entry
// exists with ShareToFeed set.
//
// Handlers return errors for the caller to report; they never retry.
type Mirror struct {
	log       *slog.Logger
	users     userReader
	posts     postStore
	projector *Projector
}

// NewMirror creates a new feed mirror.
func NewMirror(logger *slog.Logger, users userReader, posts postStore, projector *Projector) *Mirror {
	return &Mirror{
		log:       logger.With("service", "feed"),
		users:     users,
		posts:     posts,
		projector: projector,
	}
}

// OnEntryCreated projects a new entry that was created already shared.
func (m *Mirror) OnEntryCreated(ctx context.Context, ev domain.EntryEvent) error {
	if ev.After == nil {
		m.log.WarnContext(ctx, "created event without entry data", slog.String("entry_id", ev.EntryID.String()))
		return nil
	}
	if !ev.After.ShareToFeed {
		observability.FeedProjections.WithLabelValues("skip").Inc()
		return nil
	}

	if err := m.project(ctx, *ev.After); err != nil {
		return fmt.Errorf("feed.OnEntryCreated: %w", err)
	}
	return nil
}

// OnEntryUpdated reacts to a change of the share flag only; edits to an
// already shared entry are not propagated.
func (m *Mirror) OnEntryUpdated(ctx context.Context, ev domain.EntryEvent) error {
	if ev.Before == nil || ev.After == nil {
		m.log.WarnContext(ctx, "updated event without before/after data", slog.String("entry_id", ev.EntryID.String()))
		return nil
	}

	switch {
	case !ev.Before.ShareToFeed && ev.After.ShareToFeed:
		if err := m.project(ctx, *ev.After); err != nil {
			return fmt.Errorf("feed.OnEntryUpdated: %w", err)
		}
	case ev.Before.ShareToFeed && !ev.After.ShareToFeed:
		if err := m.unshare(ctx, ev.After.ID); err != nil {
			return fmt.Errorf("feed.OnEntryUpdated: %w", err)
		}
	default:
		observability.FeedProjections.WithLabelValues("skip").Inc()
	}
	return nil
}

// OnEntryDeleted removes the entry's post if there is one.
func (m *Mirror) OnEntryDeleted(ctx context.Context, ev domain.EntryEvent) error {
	exists, err := m.posts.Exists(ctx, ev.EntryID)
	if err != nil {
		return fmt.Errorf("feed.OnEntryDeleted: check post: %w", err)
	}
	if !exists {
		observability.FeedProjections.WithLabelValues("skip").Inc()
		return nil
	}

	if err := m.unshare(ctx, ev.EntryID); err != nil {
		return fmt.Errorf("feed.OnEntryDeleted: %w", err)
	}
	return nil
}

// project builds and writes the post for entry, resolving its owner.
func (m *Mirror) project(ctx context.Context, entry domain.Entry) error {
	owner, err := m.users.GetByID(ctx, entry.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load owner: %w", err)
		}
		owner = nil
	}

	post := m.projector.Build(entry, owner)
	if err := m.posts.Upsert(ctx, post); err != nil {
		return fmt.Errorf("write community post: %w", err)
	}

	observability.FeedProjections.WithLabelValues("upsert").Inc()
	m.log.InfoContext(ctx, "entry shared to community feed",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()),
		slog.Bool("owner_found", owner != nil),
	)
	return nil
}

func (m *Mirror) unshare(ctx context.Context, entryID uuid.UUID) error {
	deleted, err := m.posts.Delete(ctx, entryID)
	if err != nil {
		return fmt.Errorf("delete community post: %w", err)
	}

	observability.FeedProjections.WithLabelValues("delete").Inc()
	m.log.InfoContext(ctx, "entry removed from community feed",
		slog.String("entry_id", entryID.String()),
		slog.Bool("was_present", deleted),
	)
	return nil
}
