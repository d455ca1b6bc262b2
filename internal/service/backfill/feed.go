package backfill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/observability"
)

// JobBackfillFeed is the checkpoint key of BackfillCommunityFeed.
const JobBackfillFeed = "backfill_feed"

// BackfillCommunityFeed creates the community post of every shared entry
// that does not have one yet. Existing posts are left untouched.
//
// Progress is checkpointed after every user. A run resumes after the stored
// cursor with the stored totals; a completed run removes the checkpoint, so
// the next run scans everything again.
func (s *Service) BackfillCommunityFeed(ctx context.Context) (*BackfillResult, error) {
	res, err := s.backfillFeed(ctx)
	if err != nil {
		observability.BackfillRuns.WithLabelValues(JobBackfillFeed, "error").Inc()
		s.log.ErrorContext(ctx, "feed backfill failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("backfill.BackfillCommunityFeed: %w", err)
	}

	observability.BackfillRuns.WithLabelValues(JobBackfillFeed, "ok").Inc()
	s.log.InfoContext(ctx, "feed backfill finished",
		slog.Int("processed_count", res.ProcessedCount),
		slog.Int("shared_count", res.SharedCount),
		slog.Bool("resumed", res.Resumed),
	)
	return res, nil
}

// ResetFeedBackfill discards the stored checkpoint so the next run starts
// from the first user.
func (s *Service) ResetFeedBackfill(ctx context.Context) error {
	if err := s.checkpoints.Delete(ctx, JobBackfillFeed); err != nil {
		return fmt.Errorf("backfill.ResetFeedBackfill: %w", err)
	}
	s.log.InfoContext(ctx, "feed backfill checkpoint reset")
	return nil
}

func (s *Service) backfillFeed(ctx context.Context) (*BackfillResult, error) {
	res := &BackfillResult{}
	var after uuid.UUID

	cp, err := s.checkpoints.Get(ctx, JobBackfillFeed)
	switch {
	case err == nil:
		after = cp.CursorID
		res.ProcessedCount = cp.Processed
		res.SharedCount = cp.Shared
		res.Resumed = true
		s.log.InfoContext(ctx, "resuming feed backfill",
			slog.String("after_user_id", after.String()),
			slog.Int("processed", cp.Processed),
		)
	case errors.Is(err, domain.ErrNotFound):
		s.log.InfoContext(ctx, "feed backfill started", slog.Int("page_size", s.pageSize))
	default:
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}

	for {
		users, err := s.users.ListPage(ctx, after, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		for i := range users {
			owner := &users[i]
			if err := s.backfillUser(ctx, owner, res); err != nil {
				return nil, err
			}
			after = owner.ID

			err := s.checkpoints.Save(ctx, domain.JobCheckpoint{
				Job:       JobBackfillFeed,
				CursorID:  after,
				Processed: res.ProcessedCount,
				Shared:    res.SharedCount,
				UpdatedAt: s.now(),
			})
			if err != nil {
				return nil, fmt.Errorf("save checkpoint: %w", err)
			}
		}

		if len(users) < s.pageSize {
			break
		}
	}

	if err := s.checkpoints.Delete(ctx, JobBackfillFeed); err != nil {
		return nil, fmt.Errorf("clear checkpoint: %w", err)
	}
	return res, nil
}

func (s *Service) backfillUser(ctx context.Context, owner *domain.User, res *BackfillResult) error {
	var after uuid.UUID
	for {
		entries, err := s.entries.ListByUserPage(ctx, owner.ID, after, s.pageSize)
		if err != nil {
			return fmt.Errorf("list entries of user %s: %w", owner.ID, err)
		}

		for _, e := range entries {
			res.ProcessedCount++
			if !e.ShareToFeed {
				continue
			}

			exists, err := s.posts.Exists(ctx, e.ID)
			if err != nil {
				return fmt.Errorf("check post %s: %w", e.ID, err)
			}
			if exists {
				continue
			}

			if err := s.posts.Upsert(ctx, s.projector.Build(e, owner)); err != nil {
				return fmt.Errorf("write post %s: %w", e.ID, err)
			}
			res.SharedCount++
			observability.FeedProjections.WithLabelValues("backfill").Inc()
		}

		if len(entries) < s.pageSize {
			return nil
		}
		after = entries[len(entries)-1].ID
	}
}
