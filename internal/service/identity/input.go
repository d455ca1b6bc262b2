package identity

import (
	"strings"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// IssueTokenInput holds parameters for the IssueToken operation.
type IssueTokenInput struct {
	Username       string
	DisplayName    string
	IsRegistration bool
}

// normalize trims the username and defaults the display name to it.
func (i IssueTokenInput) normalize() IssueTokenInput {
	i.Username = strings.TrimSpace(i.Username)
	if i.DisplayName == "" {
		i.DisplayName = i.Username
	}
	i.DisplayName = strings.TrimSpace(i.DisplayName)
	return i
}

// Validate checks the normalized input.
func (i IssueTokenInput) Validate() error {
	return domain.ValidateUsername(i.Username)
}
