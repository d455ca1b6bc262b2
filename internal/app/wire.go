package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres/checkpoint"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres/community"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/chaosjournal-backend/internal/auth"
	"github.com/heartmarshall/chaosjournal-backend/internal/config"
	"github.com/heartmarshall/chaosjournal-backend/internal/events"
	"github.com/heartmarshall/chaosjournal-backend/internal/service/backfill"
	"github.com/heartmarshall/chaosjournal-backend/internal/service/feed"
	"github.com/heartmarshall/chaosjournal-backend/internal/service/identity"
)

// Components is the service graph shared by the server and chaosctl.
type Components struct {
	Tokens     *auth.JWTManager
	Identity   *identity.Service
	Backfill   *backfill.Service
	Mirror     *feed.Mirror
	Dispatcher *events.Dispatcher
}

// Wire builds repositories and services on top of an open pool.
func Wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Components {
	txm := postgres.NewTxManager(pool)

	users := user.New(pool)
	entries := entry.New(pool)
	posts := community.New(pool)
	checkpoints := checkpoint.New(pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.TokenTTL)
	projector := feed.NewProjector()
	mirror := feed.NewMirror(logger, users, posts, projector)

	return &Components{
		Tokens:     tokens,
		Identity:   identity.NewService(logger, users, txm, tokens),
		Backfill:   backfill.NewService(logger, users, entries, posts, checkpoints, txm, projector, cfg.Backfill.PageSize),
		Mirror:     mirror,
		Dispatcher: events.NewDispatcher(mirror, events.NewSink(logger), logger),
	}
}
