package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/chaosjournal-backend/internal/transport/middleware"
)

// CallablePath is the route pattern every callable is served under.
const CallablePath = "/v1/callable/{name}"

const maxRequestBody = 1 << 20

// CallableFunc runs one callable. data is the raw "data" member of the
// request envelope and may be empty. A non-nil result is sent as "result".
type CallableFunc func(ctx context.Context, data json.RawMessage) (any, error)

type callableEntry struct {
	name    string
	handler http.Handler
}

// Callables serves POST /v1/callable/{name}, resolving name and its aliases
// to registered functions. Each function carries its own middleware.
type Callables struct {
	log     *slog.Logger
	entries map[string]*callableEntry
}

// NewCallables creates an empty callable registry.
func NewCallables(logger *slog.Logger) *Callables {
	return &Callables{
		log:     logger.With("handler", "callable"),
		entries: make(map[string]*callableEntry),
	}
}

// Register adds fn under name and every alias. mws wrap fn only.
func (c *Callables) Register(name string, aliases []string, fn CallableFunc, fallback func(error) *CallableError, mws ...middleware.Middleware) {
	entry := &callableEntry{
		name:    name,
		handler: middleware.Chain(mws...)(c.invoke(name, fn, fallback)),
	}
	c.entries[name] = entry
	for _, alias := range aliases {
		c.entries[alias] = entry
	}
}

// ServeHTTP dispatches to the callable named by the path.
func (c *Callables) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	entry, ok := c.entries[name]
	if !ok {
		writeCallableError(w, NewCallableError(StatusNotFound, "Function "+name+" not found."))
		return
	}
	entry.handler.ServeHTTP(w, r)
}

func (c *Callables) invoke(name string, fn CallableFunc, fallback func(error) *CallableError) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := readData(r)
		if err != nil {
			c.log.WarnContext(r.Context(), "malformed callable request",
				slog.String("callable", name),
				slog.String("error", err.Error()),
			)
			writeCallableError(w, NewCallableError(StatusInvalidArgument, msgMalformed))
			return
		}

		result, err := fn(r.Context(), data)
		if err != nil {
			ce := classify(err, fallback)
			if ce.Status == StatusInternal {
				c.log.ErrorContext(r.Context(), "callable failed",
					slog.String("callable", name),
					slog.String("error", err.Error()),
				)
			}
			writeCallableError(w, ce)
			return
		}

		writeResult(w, result)
	})
}

// readData extracts the "data" member of the request envelope. An empty
// body yields nil data.
func readData(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxRequestBody {
		return nil, errors.New("request body too large")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// decodeObject decodes data into dst and requires it to be a JSON object.
func decodeObject(data json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return NewCallableError(StatusInvalidArgument, msgMalformed)
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return NewCallableError(StatusInvalidArgument, msgMalformed)
	}
	return nil
}
