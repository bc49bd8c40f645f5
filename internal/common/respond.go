package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError maps the store error taxonomy onto HTTP statuses and writes a
// JSON error body. Unknown errors become 500s without leaking internals.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrDuplicateRequest), errors.Is(err, ErrAlreadyInCollection):
		status = http.StatusConflict
	case errors.Is(err, ErrSelfTarget):
		status = http.StatusBadRequest
	default:
		log.Printf("internal error: %v", err)
		message = "internal server error"
	}

	WriteJSON(w, status, map[string]string{"error": message})
}
