package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"photofolio/internal/auth"
	"photofolio/internal/service"
)

// AuthService defines the authentication operations required by the
// HTTP handlers.
type AuthService interface {
	// Authenticate verifies a username/password pair.
	// Returns service.ErrInvalidCredentials on mismatch.
	Authenticate(ctx context.Context, username, password string) error
}

// AuthHandler handles login, logout and session checks.
type AuthHandler struct {
	// AuthService verifies credentials.
	AuthService AuthService
	// Codec issues and verifies session tokens.
	Codec *auth.TokenCodec
	// Logger reports internal failures.
	Logger *zap.Logger
}

// loginRequest represents the JSON payload for login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the submitted credentials and, on success, sets the
// session cookie. Bad credentials yield 401 with a JSON error body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	auth.SetCookie(w, h.Codec.Issue())
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Logout clears the session cookie. Logging out without a session is
// not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Check reports whether the request carries a valid session.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if !h.Codec.IsAuthenticated(r.Header.Get("Cookie")) {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": true})
}
