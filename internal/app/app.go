package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres/outbox"
	redisadapter "github.com/heartmarshall/chaosjournal-backend/internal/adapter/redis"
	"github.com/heartmarshall/chaosjournal-backend/internal/adapter/redis/stream"
	"github.com/heartmarshall/chaosjournal-backend/internal/config"
	"github.com/heartmarshall/chaosjournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/chaosjournal-backend/internal/transport/rest"
)

// Run starts the HTTP server and the entry event source and blocks until ctx
// is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting chaosjournal",
		slog.String("version", BuildVersion()),
		slog.String("events_source", cfg.Events.Source),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	c := Wire(cfg, logger, pool)

	checks := []rest.Check{{Name: "database", Ping: pool.Ping}}

	var consume func(context.Context) error
	switch cfg.Events.Source {
	case config.EventSourcePostgres:
		consume = outbox.NewRelay(pool, c.Dispatcher, logger, cfg.Events.BatchSize, cfg.Events.PollInterval).Run
	case config.EventSourceRedis:
		client, err := redisadapter.NewClient(ctx, cfg.Events.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		checks = append(checks, rest.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
		consume = stream.NewConsumer(client, c.Dispatcher, logger, cfg.Events.Redis, cfg.Events.BatchSize).Run
	default:
		logger.Warn("entry event source disabled, community feed is only updated by backfill")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           newRouterHandler(cfg, logger, c, limiter, checks...),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if consume != nil {
		g.Go(func() error {
			if err := consume(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("event source %s: %w", cfg.Events.Source, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("stopped")
	return nil
}

func newRouterHandler(cfg *config.Config, logger *slog.Logger, c *Components, limiter *middleware.RateLimiter, checks ...rest.Check) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Limiter:   limiter,
		Tokens:    c.Tokens,
		Identity:  rest.NewIdentityHandler(c.Identity, logger),
		Admin:     rest.NewAdminHandler(c.Backfill, logger),
		Health:    rest.NewHealthHandler(Version, checks...),
	})
}
