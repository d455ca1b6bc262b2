package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// UsernameError reports a lookup outcome that names the requested username.
// Err is ErrAlreadyExists or ErrNotFound.
type UsernameError struct {
	Username string
	Err      error
}

func (e *UsernameError) Error() string {
	switch {
	case errors.Is(e.Err, ErrAlreadyExists):
		return fmt.Sprintf("Username '%s' is already taken.", e.Username)
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("Username '%s' not found.", e.Username)
	default:
		return fmt.Sprintf("username '%s': %v", e.Username, e.Err)
	}
}

func (e *UsernameError) Unwrap() error { return e.Err }
