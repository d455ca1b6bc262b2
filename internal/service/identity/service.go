// Package identity maps usernames to principals and issues custom tokens.
package identity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the identity service.
type userRepo interface {
	GetByUsernameLower(ctx context.Context, usernameLower string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	ClaimUsername(ctx context.Context, usernameLower string, userID uuid.UUID) error
	TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// txManager defines the transaction manager interface needed by the identity service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenIssuer signs custom tokens for a principal.
type tokenIssuer interface {
	GenerateCustomToken(userID uuid.UUID, role string) (string, error)
}

// Service implements the identity bridge.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tx     txManager
	tokens tokenIssuer
	now    func() time.Time
}

// NewService creates a new identity service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager, tokens tokenIssuer) *Service {
	return &Service{
		log:    logger.With("service", "identity"),
		users:  users,
		tx:     tx,
		tokens: tokens,
		now:    time.Now,
	}
}
