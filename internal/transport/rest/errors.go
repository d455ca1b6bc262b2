package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
	"github.com/heartmarshall/chaosjournal-backend/internal/transport/middleware"
)

// Status is the canonical error status of the callable protocol.
type Status string

const (
	StatusInvalidArgument   Status = "INVALID_ARGUMENT"
	StatusAlreadyExists     Status = "ALREADY_EXISTS"
	StatusNotFound          Status = "NOT_FOUND"
	StatusPermissionDenied  Status = "PERMISSION_DENIED"
	StatusUnauthenticated   Status = "UNAUTHENTICATED"
	StatusResourceExhausted Status = "RESOURCE_EXHAUSTED"
	StatusInternal          Status = "INTERNAL"
)

var httpStatus = map[Status]int{
	StatusInvalidArgument:   http.StatusBadRequest,
	StatusAlreadyExists:     http.StatusConflict,
	StatusNotFound:          http.StatusNotFound,
	StatusPermissionDenied:  http.StatusForbidden,
	StatusUnauthenticated:   http.StatusUnauthorized,
	StatusResourceExhausted: http.StatusTooManyRequests,
	StatusInternal:          http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code a callable error is sent with.
func (s Status) HTTPStatus() int {
	if code, ok := httpStatus[s]; ok {
		return code
	}
	return http.StatusInternalServerError
}

const msgMalformed = "Request data is missing or malformed."

// CallableError is an error the client sees verbatim.
type CallableError struct {
	Status  Status
	Message string
	Details any
}

func (e *CallableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// NewCallableError creates a CallableError without details.
func NewCallableError(status Status, message string) *CallableError {
	return &CallableError{Status: status, Message: message}
}

// internalError builds the INTERNAL error of a callable, carrying the
// cause's message as details.
func internalError(message string, cause error) *CallableError {
	return &CallableError{Status: StatusInternal, Message: message, Details: cause.Error()}
}

// classify maps an error returned by a service to the client-facing error.
// fallback is used for anything the domain does not classify.
func classify(err error, fallback func(error) *CallableError) *CallableError {
	var ce *CallableError
	if errors.As(err, &ce) {
		return ce
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return NewCallableError(StatusInvalidArgument, validationMessage(ve))
	}

	var ue *domain.UsernameError
	if errors.As(err, &ue) {
		switch {
		case errors.Is(ue, domain.ErrAlreadyExists):
			return NewCallableError(StatusAlreadyExists, ue.Error())
		case errors.Is(ue, domain.ErrNotFound):
			return NewCallableError(StatusNotFound, ue.Error())
		}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return NewCallableError(StatusUnauthenticated, "The function must be called while authenticated.")
	case errors.Is(err, domain.ErrForbidden):
		return NewCallableError(StatusPermissionDenied, "The function must be called by an admin.")
	case errors.Is(err, middleware.ErrRateLimited):
		return NewCallableError(StatusResourceExhausted, "Too many requests. Try again later.")
	}

	return fallback(err)
}

// validationMessage renders the first field error as a sentence, e.g.
// "Username must be at least 3 characters long."
func validationMessage(ve *domain.ValidationError) string {
	if len(ve.Errors) == 0 {
		return msgMalformed
	}
	fe := ve.Errors[0]
	msg := capitalize(fe.Field) + " " + fe.Message
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// WriteError renders err in the callable error envelope. It is the
// middleware.ErrorWriter used for rejections that happen before a callable
// runs.
func WriteError(w http.ResponseWriter, _ *http.Request, err error) {
	writeCallableError(w, classify(err, func(error) *CallableError {
		return NewCallableError(StatusInternal, "internal")
	}))
}
