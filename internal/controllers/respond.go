package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"wsd/internal/errs"
)

const maxRequestBodySize = 1 << 20 // 1 MB

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeError maps sentinel errors to the HTTP taxonomy. Validation → 400,
// unauthorized → 401 (always the same body), not found → 404, upstream →
// 503, everything else → a generic 500 with detail kept out of the response.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "unauthorized"})
	case errors.Is(err, errs.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"success": false, "message": "upstream unavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "internal server error"})
	}
}
