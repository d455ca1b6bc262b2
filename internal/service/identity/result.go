package identity

import "github.com/google/uuid"

// TokenResult is returned by IssueToken.
type TokenResult struct {
	Token       string
	PrincipalID uuid.UUID
	Registered  bool
}
