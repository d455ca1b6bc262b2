package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/chaosjournal-backend/internal/config"
	"github.com/heartmarshall/chaosjournal-backend/internal/transport/middleware"
)

// Callable names and the legacy names clients may still call.
const (
	CallableIssueToken            = "issueToken"
	CallableNormalizeUsernames    = "normalizeUsernames"
	CallableBackfillCommunityFeed = "backfillCommunityFeed"
)

var callableAliases = map[string][]string{
	CallableIssueToken:            {"generateCustomToken"},
	CallableNormalizeUsernames:    {"addUsernameLowerField"},
	CallableBackfillCommunityFeed: {"migrateToCommunityFeed"},
}

type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, string, error)
}

// RouterDeps holds everything the HTTP surface is built from.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Limiter   *middleware.RateLimiter
	Tokens    tokenValidator
	Identity  *IdentityHandler
	Admin     *AdminHandler
	Health    *HealthHandler
}

// NewRouter assembles the callable, health and metrics routes.
func NewRouter(d RouterDeps) http.Handler {
	callables := NewCallables(d.Logger)

	callables.Register(CallableIssueToken, callableAliases[CallableIssueToken],
		d.Identity.IssueToken, IssueTokenFailure,
		d.Limiter.Limit(d.RateLimit.IssueTokenPerMinute, WriteError),
	)

	adminOnly := []middleware.Middleware{
		middleware.Auth(d.Tokens, WriteError),
		middleware.AdminOnly(WriteError),
	}
	callables.Register(CallableNormalizeUsernames, callableAliases[CallableNormalizeUsernames],
		d.Admin.NormalizeUsernames, MigrationFailure, adminOnly...,
	)
	callables.Register(CallableBackfillCommunityFeed, callableAliases[CallableBackfillCommunityFeed],
		d.Admin.BackfillCommunityFeed, MigrationFailure, adminOnly...,
	)

	mux := http.NewServeMux()
	mux.Handle("POST "+CallablePath, callables)
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger, WriteError),
		middleware.CORS(d.CORS),
	)(mux)
}
