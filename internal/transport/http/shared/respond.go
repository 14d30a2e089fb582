// Package shared centralizes the JSON response envelopes used by every
// handler so error translation stays consistent across the API surface.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "farmgate/pkg/domain-errors"
)

// WriteJSON renders v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates domain errors into the HTTP error envelope. Unknown
// errors collapse to a 500 without leaking internals.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)

	body := map[string]string{"error": string(code)}
	if status < http.StatusInternalServerError {
		body["message"] = err.Error()
	}
	WriteJSON(w, status, body)
}
