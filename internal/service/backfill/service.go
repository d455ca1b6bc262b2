// Package backfill holds the administrative one-off jobs that bring existing
// data in line with the current schema and projections.
package backfill

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/service/feed"
)

const defaultPageSize = 200

// userStore defines the user repository interface needed by the backfill jobs.
type userStore interface {
	ListPage(ctx context.Context, after uuid.UUID, limit int) ([]domain.User, error)
	ListMissingUsernameLower(ctx context.Context, after uuid.UUID, limit int) ([]domain.UsernameUpdate, error)
	ApplyUsernameLower(ctx context.Context, updates []domain.UsernameUpdate) (int, []domain.UsernameUpdate, error)
}

type entryLister interface {
	ListByUserPage(ctx context.Context, userID, after uuid.UUID, limit int) ([]domain.Entry, error)
}

type postStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Upsert(ctx context.Context, p domain.CommunityPost) error
}

type checkpointStore interface {
	Get(ctx context.Context, job string) (*domain.JobCheckpoint, error)
	Save(ctx context.Context, c domain.JobCheckpoint) error
	Delete(ctx context.Context, job string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the backfill jobs.
type Service struct {
	log         *slog.Logger
	users       userStore
	entries     entryLister
	posts       postStore
	checkpoints checkpointStore
	tx          txManager
	projector   *feed.Projector
	pageSize    int
	now         func() time.Time
}

// NewService creates a new backfill service. A non-positive pageSize falls
// back to 200.
func NewService(
	logger *slog.Logger,
	users userStore,
	entries entryLister,
	posts postStore,
	checkpoints checkpointStore,
	tx txManager,
	projector *feed.Projector,
	pageSize int,
) *Service {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Service{
		log:         logger.With("service", "backfill"),
		users:       users,
		entries:     entries,
		posts:       posts,
		checkpoints: checkpoints,
		tx:          tx,
		projector:   projector,
		pageSize:    pageSize,
		now:         time.Now,
	}
}
