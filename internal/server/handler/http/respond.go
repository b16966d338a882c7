// Package http provides the HTTP handlers and router for the portfolio API.
package http

import (
	"encoding/json"
	"net/http"

	"photofolio/internal/auth"
)

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requireAuth re-checks the session token on mutating routes. It writes
// a 401 response and returns false when the request carries no valid
// session.
func requireAuth(codec *auth.TokenCodec, w http.ResponseWriter, r *http.Request) bool {
	if codec.IsAuthenticated(r.Header.Get("Cookie")) {
		return true
	}
	writeError(w, http.StatusUnauthorized, "Unauthorized")
	return false
}
