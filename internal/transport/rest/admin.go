package rest

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/heartmarshall/chaosjournal-backend/internal/service/backfill"
	"github.com/heartmarshall/chaosjournal-backend/pkg/ctxutil"
)

const (
	msgMigrationComplete = "Migration complete"
	msgMigrationFailed   = "Migration failed"
)

type backfillService interface {
	NormalizeUsernames(ctx context.Context) (*backfill.NormalizeResult, error)
	BackfillCommunityFeed(ctx context.Context) (*backfill.BackfillResult, error)
}

// AdminHandler serves the administrative backfill callables. Both are
// mounted behind middleware.AdminOnly.
type AdminHandler struct {
	jobs backfillService
	log  *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(jobs backfillService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{jobs: jobs, log: logger.With("handler", "admin")}
}

type normalizeResponse struct {
	Status       string `json:"status"`
	UpdatedCount int    `json:"updatedCount"`
}

type backfillResponse struct {
	Status         string `json:"status"`
	ProcessedCount int    `json:"processedCount"`
	SharedCount    int    `json:"sharedCount"`
}

// NormalizeUsernames runs the username normalisation job. Request data is
// ignored.
func (h *AdminHandler) NormalizeUsernames(ctx context.Context, _ json.RawMessage) (any, error) {
	h.logRequest(ctx, "normalize_usernames")
	res, err := h.jobs.NormalizeUsernames(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeResponse{Status: msgMigrationComplete, UpdatedCount: res.UpdatedCount}, nil
}

// BackfillCommunityFeed runs the community feed backfill. Request data is
// ignored.
func (h *AdminHandler) BackfillCommunityFeed(ctx context.Context, _ json.RawMessage) (any, error) {
	h.logRequest(ctx, "backfill_feed")
	res, err := h.jobs.BackfillCommunityFeed(ctx)
	if err != nil {
		return nil, err
	}
	return backfillResponse{
		Status:         msgMigrationComplete,
		ProcessedCount: res.ProcessedCount,
		SharedCount:    res.SharedCount,
	}, nil
}

func (h *AdminHandler) logRequest(ctx context.Context, job string) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)
	h.log.InfoContext(ctx, "admin job requested",
		slog.String("job", job),
		slog.String("user_id", userID.String()),
	)
}

// MigrationFailure is the fallback for unclassified admin job errors.
func MigrationFailure(err error) *CallableError {
	return internalError(msgMigrationFailed, err)
}
