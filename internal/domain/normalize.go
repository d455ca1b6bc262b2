package domain

import (
	"strings"
	"unicode/utf8"
)

// Username length bounds, counted in characters.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
)

// NormalizeUsername returns the lowercase form used for uniqueness lookups.
// It is never shown to users.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername checks an already trimmed username against the length rules.
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	switch {
	case n == 0:
		return NewValidationError("username", "is required and cannot be empty")
	case n < UsernameMinLen:
		return NewValidationError("username", "must be at least 3 characters long")
	case n > UsernameMaxLen:
		return NewValidationError("username", "must be no more than 30 characters long")
	}
	return nil
}
