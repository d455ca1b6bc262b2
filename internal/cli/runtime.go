package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres/outbox"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/chaosjournal-backend/internal/app"
	"github.com/heartmarshall/chaosjournal-backend/internal/config"
	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/service/backfill"
	"github.com/heartmarshall/chaosjournal-backend/migrations"
)

//go:generate moq -out jobs_mock_test.go -pkg cli . jobRunner
//go:generate moq -out role_store_mock_test.go -pkg cli . roleStore
//go:generate moq -out migrator_mock_test.go -pkg cli . migrator
//go:generate moq -out event_pruner_mock_test.go -pkg cli . eventPruner

type jobRunner interface {
	NormalizeUsernames(ctx context.Context) (*backfill.NormalizeResult, error)
	BackfillCommunityFeed(ctx context.Context) (*backfill.BackfillResult, error)
	ResetFeedBackfill(ctx context.Context) error
}

type roleStore interface {
	GetByUsernameLower(ctx context.Context, usernameLower string) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (bool, error)
}

type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
}

type eventPruner interface {
	Prune(ctx context.Context, threshold time.Time) (int64, error)
}

type pruneFunc func(ctx context.Context, threshold time.Time) (int64, error)

func (f pruneFunc) Prune(ctx context.Context, threshold time.Time) (int64, error) {
	return f(ctx, threshold)
}

// Runtime is what a subcommand works against. Close releases every
// connection the Opener made.
type Runtime struct {
	Jobs       jobRunner
	Users      roleStore
	Migrations migrator
	Events     eventPruner
	Close      func()
}

// Opener connects a Runtime using the config at configPath.
type Opener func(ctx context.Context, configPath string) (*Runtime, error)

// Open is the production Opener: it loads config, connects the pool and a
// database/sql handle for goose, and wires the backfill service.
func Open(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		pool.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	c := app.Wire(cfg, logger, pool)

	return &Runtime{
		Jobs:       c.Backfill,
		Users:      user.New(pool),
		Migrations: provider,
		Events: pruneFunc(func(ctx context.Context, threshold time.Time) (int64, error) {
			return outbox.Prune(ctx, pool, threshold)
		}),
		Close: func() {
			db.Close()
			pool.Close()
		},
	}, nil
}
