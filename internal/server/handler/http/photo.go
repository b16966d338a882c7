package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"photofolio/internal/auth"
	"photofolio/internal/models"
	"photofolio/internal/service"
)

// maxUploadBytes caps the multipart form size of a photo upload.
const maxUploadBytes = 32 << 20

// PhotoService defines the photo operations required by the HTTP handlers.
type PhotoService interface {
	List(ctx context.Context) []models.Photo
	ListByCategory(ctx context.Context, categoryID string) []models.Photo
	Get(ctx context.Context, id string) (*models.Photo, error)
	Create(ctx context.Context, in service.CreatePhotoInput) (*models.Photo, error)
	Update(ctx context.Context, id string, upd models.PhotoUpdate) (*models.Photo, error)
	Delete(ctx context.Context, id string) error
}

// FileStore defines the image file operations required by the HTTP
// handlers.
type FileStore interface {
	// Save stores the content under the given filename and returns the
	// public URL path.
	Save(name string, r io.Reader) (string, error)
	// Remove deletes the file behind a public URL path.
	Remove(publicURL string) error
}

// PhotoHandler handles the photo API routes, including uploads.
type PhotoHandler struct {
	// Service performs the photo operations.
	Service PhotoService
	// Files stores and removes the image files.
	Files FileStore
	// Codec re-checks the session on mutating routes.
	Codec *auth.TokenCodec
	// Logger reports internal failures.
	Logger *zap.Logger
}

// List returns all photos, newest first. A "category" query parameter
// narrows the listing to one category. Public.
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		writeJSON(w, http.StatusOK, h.Service.ListByCategory(r.Context(), categoryID))
		return
	}
	writeJSON(w, http.StatusOK, h.Service.List(r.Context()))
}

// Get returns one photo by id. Public.
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Photo not found")
		return
	}
	if err != nil {
		h.Logger.Error("get photo failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create accepts a multipart upload (file, title, description,
// backgroundColor, categoryId), stores the image bytes and the photo
// row. Requires a valid session. The file write and the row insert are
// not transactional; a crash in between leaves an orphaned file.
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(h.Codec, w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Title, file, and category are required")
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	categoryID := r.FormValue("categoryId")
	if title == "" || categoryID == "" {
		writeError(w, http.StatusBadRequest, "Title, file, and category are required")
		return
	}

	imageURL, err := h.Files.Save(header.Filename, file)
	if err != nil {
		h.Logger.Error("store upload failed", zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	p, err := h.Service.Create(r.Context(), service.CreatePhotoInput{
		Title:           title,
		Description:     r.FormValue("description"),
		ImageURL:        imageURL,
		BackgroundColor: r.FormValue("backgroundColor"),
		CategoryID:      categoryID,
	})
	if err != nil {
		h.Logger.Error("create photo failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Update merges a partial JSON payload into the photo. Only title,
// description, backgroundColor and categoryId are updatable; unknown
// fields are rejected. Requires a valid session.
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(h.Codec, w, r) {
		return
	}

	var upd models.PhotoUpdate
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	p, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Photo not found")
		return
	}
	if err != nil {
		h.Logger.Error("update photo failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete removes the photo row, then removes the backing image file
// best-effort: a file removal failure is logged and the deletion still
// reports success. Requires a valid session.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(h.Codec, w, r) {
		return
	}

	id := chi.URLParam(r, "id")
	p, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Photo not found")
		return
	}
	if err != nil {
		h.Logger.Error("load photo for delete failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.Logger.Error("delete photo failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.Files.Remove(p.ImageURL); err != nil {
		h.Logger.Warn("failed to remove image file",
			zap.String("image_url", p.ImageURL), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
