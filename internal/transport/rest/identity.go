package rest

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/heartmarshall/chaosjournal-backend/internal/service/identity"
)

const msgTokenFailed = "Failed to generate custom token due to an unexpected server error."

type identityService interface {
	IssueToken(ctx context.Context, input identity.IssueTokenInput) (*identity.TokenResult, error)
}

// IdentityHandler serves the token-issuing callable.
type IdentityHandler struct {
	svc identityService
	log *slog.Logger
}

// NewIdentityHandler creates an IdentityHandler.
func NewIdentityHandler(svc identityService, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{svc: svc, log: logger.With("handler", "identity")}
}

type issueTokenRequest struct {
	Username       looseString `json:"username"`
	DisplayName    looseString `json:"displayName"`
	IsRegistration looseBool   `json:"isRegistration"`
}

type issueTokenResponse struct {
	Token       string `json:"token"`
	PrincipalID string `json:"principalId"`
	CustomToken string `json:"customToken"`
	UserID      string `json:"userId"`
}

// IssueToken registers or logs in a username and returns a custom token.
func (h *IdentityHandler) IssueToken(ctx context.Context, data json.RawMessage) (any, error) {
	var req issueTokenRequest
	if err := decodeObject(data, &req); err != nil {
		h.log.WarnContext(ctx, "invalid or empty data payload")
		return nil, err
	}

	res, err := h.svc.IssueToken(ctx, identity.IssueTokenInput{
		Username:       string(req.Username),
		DisplayName:    string(req.DisplayName),
		IsRegistration: bool(req.IsRegistration),
	})
	if err != nil {
		return nil, err
	}

	id := res.PrincipalID.String()
	return issueTokenResponse{
		Token:       res.Token,
		PrincipalID: id,
		CustomToken: res.Token,
		UserID:      id,
	}, nil
}

// IssueTokenFailure is the fallback for unclassified IssueToken errors.
func IssueTokenFailure(err error) *CallableError {
	return internalError(msgTokenFailed, err)
}
