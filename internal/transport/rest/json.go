package rest

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type resultEnvelope struct {
	Result any `json:"result"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeResult(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusOK, resultEnvelope{Result: result})
}

func writeCallableError(w http.ResponseWriter, ce *CallableError) {
	writeJSON(w, ce.Status.HTTPStatus(), errorEnvelope{Error: errorBody{
		Status:  ce.Status,
		Message: ce.Message,
		Details: ce.Details,
	}})
}
