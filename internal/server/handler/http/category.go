package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"photofolio/internal/auth"
	"photofolio/internal/models"
	"photofolio/internal/service"
)

// CategoryService defines the category operations required by the HTTP
// handlers.
type CategoryService interface {
	List(ctx context.Context) []models.Category
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, name, description string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryHandler handles the category API routes.
type CategoryHandler struct {
	// Service performs the category operations.
	Service CategoryService
	// Codec re-checks the session on mutating routes.
	Codec *auth.TokenCodec
	// Logger reports internal failures.
	Logger *zap.Logger
}

// createCategoryRequest represents the JSON payload for category creation.
type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List returns all categories sorted by name. Public.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.List(r.Context()))
}

// Get returns one category by id. Public.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		h.Logger.Error("get category failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create stores a new category. Requires a valid session.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(h.Codec, w, r) {
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	c, err := h.Service.Create(r.Context(), req.Name, req.Description)
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "Category name is required")
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "Category already exists")
	case err != nil:
		h.Logger.Error("create category failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create category")
	default:
		writeJSON(w, http.StatusOK, c)
	}
}

// Delete removes a category. Requires a valid session. Photos keep their
// reference; the display layer resolves it to "Uncategorized".
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(h.Codec, w, r) {
		return
	}

	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.Logger.Error("delete category failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
