package backfill

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/observability"
)

const jobNormalizeUsernames = "normalize_usernames"

// NormalizeUsernames fills username_lower and claims the normalized name for
// every legacy user that has a username but no normalized form. Each page is
// committed in its own transaction; users that already carry username_lower
// are never listed, so running it again is a no-op.
func (s *Service) NormalizeUsernames(ctx context.Context) (*NormalizeResult, error) {
	s.log.InfoContext(ctx, "normalize usernames started", slog.Int("page_size", s.pageSize))

	var (
		after   uuid.UUID
		updated int
	)
	for {
		page, err := s.users.ListMissingUsernameLower(ctx, after, s.pageSize)
		if err != nil {
			observability.BackfillRuns.WithLabelValues(jobNormalizeUsernames, "error").Inc()
			return nil, fmt.Errorf("backfill.NormalizeUsernames: %w", err)
		}
		if len(page) == 0 {
			break
		}
		after = page[len(page)-1].UserID

		for i := range page {
			page[i].UsernameLower = domain.NormalizeUsername(page[i].Username)
		}

		var (
			applied   int
			conflicts []domain.UsernameUpdate
		)
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var applyErr error
			applied, conflicts, applyErr = s.users.ApplyUsernameLower(txCtx, page)
			return applyErr
		})
		if err != nil {
			observability.BackfillRuns.WithLabelValues(jobNormalizeUsernames, "error").Inc()
			return nil, fmt.Errorf("backfill.NormalizeUsernames: %w", err)
		}

		for _, c := range conflicts {
			s.log.WarnContext(ctx, "normalized username already claimed",
				slog.String("user_id", c.UserID.String()),
				slog.String("username_lower", c.UsernameLower),
			)
		}

		updated += applied
		s.log.DebugContext(ctx, "normalize page committed",
			slog.Int("staged", len(page)),
			slog.Int("applied", applied),
			slog.Int("total", updated),
		)

		if len(page) < s.pageSize {
			break
		}
	}

	observability.BackfillRuns.WithLabelValues(jobNormalizeUsernames, "ok").Inc()
	s.log.InfoContext(ctx, "normalize usernames finished", slog.Int("updated_count", updated))

	return &NormalizeResult{UpdatedCount: updated}, nil
}
