// Package shared holds the response helpers every handler uses, so the JSON
// envelopes stay consistent across modules.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "buildstone/pkg/domain-errors"
)

// WriteJSON renders v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteError translates a coded domain error into the error envelope. Errors
// without a code render as a generic internal failure.
func WriteError(w http.ResponseWriter, err error) {
	de := dErrors.From(err)
	WriteJSON(w, dErrors.ToHTTPStatus(de.Code), ErrorResponse{
		Error:   string(de.Code),
		Message: de.Message,
		Field:   de.Field,
	})
}
