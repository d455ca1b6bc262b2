package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/observability"
)

const (
	modeRegister = "register"
	modeLogin    = "login"
)

// IssueToken registers a new principal or logs an existing one in, then
// issues exactly one custom token for it.
//
// Registration fails with a UsernameError wrapping domain.ErrAlreadyExists
// when the name is taken; login fails with one wrapping domain.ErrNotFound
// when it is unknown.
func (s *Service) IssueToken(ctx context.Context, input IssueTokenInput) (*TokenResult, error) {
	input = input.normalize()

	s.log.InfoContext(ctx, "token requested",
		slog.String("username", input.Username),
		slog.Bool("is_registration", input.IsRegistration),
	)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		user *domain.User
		err  error
		mode string
	)
	if input.IsRegistration {
		mode = modeRegister
		user, err = s.register(ctx, input)
	} else {
		mode = modeLogin
		user, err = s.login(ctx, input)
	}
	if err != nil {
		var nameErr *domain.UsernameError
		if errors.As(err, &nameErr) {
			s.log.WarnContext(ctx, "token refused", slog.String("mode", mode), slog.String("reason", nameErr.Error()))
		} else {
			s.log.ErrorContext(ctx, "token request failed", slog.String("mode", mode), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("identity.IssueToken: %w", err)
	}

	token, err := s.tokens.GenerateCustomToken(user.ID, user.Role.String())
	if err != nil {
		s.log.ErrorContext(ctx, "token signing failed", slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
		return nil, fmt.Errorf("identity.IssueToken: generate token: %w", err)
	}

	observability.TokensIssued.WithLabelValues(mode).Inc()

	return &TokenResult{
		Token:       token,
		PrincipalID: user.ID,
		Registered:  input.IsRegistration,
	}, nil
}

func (s *Service) register(ctx context.Context, input IssueTokenInput) (*domain.User, error) {
	usernameLower := domain.NormalizeUsername(input.Username)

	_, err := s.users.GetByUsernameLower(ctx, usernameLower)
	switch {
	case err == nil:
		return nil, &domain.UsernameError{Username: input.Username, Err: domain.ErrAlreadyExists}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	user := domain.NewUser(uuid.New(), input.Username, input.DisplayName, s.now())

	// The claim row is the uniqueness boundary: a concurrent registration of
	// the same name loses here and its profile insert rolls back with it.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, &user); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if err := s.users.ClaimUsername(txCtx, usernameLower, user.ID); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return &domain.UsernameError{Username: input.Username, Err: domain.ErrAlreadyExists}
			}
			return fmt.Errorf("claim username: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return &user, nil
}

func (s *Service) login(ctx context.Context, input IssueTokenInput) (*domain.User, error) {
	user, err := s.users.GetByUsernameLower(ctx, domain.NormalizeUsername(input.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.UsernameError{Username: input.Username, Err: domain.ErrNotFound}
		}
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	if err := s.users.TouchLogin(ctx, user.ID, s.now()); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return user, nil
}
