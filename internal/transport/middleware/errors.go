package middleware

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// ErrRateLimited is passed to the ErrorWriter when a client exceeds its quota.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrorWriter renders a rejected request. The transport supplies one that
// speaks its wire format; middleware only decides which error to report.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// PlainErrorWriter writes err as a plain-text body with a status derived
// from the error.
func PlainErrorWriter(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
