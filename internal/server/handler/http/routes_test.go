package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"photofolio/internal/auth"
	handler "photofolio/internal/server/handler/http"
	"photofolio/internal/models"
)

// newTestRouter wires the router with fake services and a real codec.
func newTestRouter(t *testing.T, uploadDir string) (http.Handler, *auth.TokenCodec, *fakeCategoryService) {
	t.Helper()
	codec := auth.NewTokenCodec("routersecret")
	logger := zap.NewNop()

	categoryFake := &fakeCategoryService{}
	authHandler := &handler.AuthHandler{AuthService: &fakeAuthService{}, Codec: codec, Logger: logger}
	categoryHandler := &handler.CategoryHandler{Service: categoryFake, Codec: codec, Logger: logger}
	photoHandler := &handler.PhotoHandler{Service: &fakePhotoService{}, Files: &fakeFileStore{}, Codec: codec, Logger: logger}
	adminHandler := &handler.AdminHandler{}

	return handler.NewRouter(authHandler, categoryHandler, photoHandler, adminHandler, codec, uploadDir, logger), codec, categoryFake
}

func TestRouter_LoginCheckLogoutFlow(t *testing.T) {
	router, _, _ := newTestRouter(t, t.TempDir())

	// login
	b, _ := json.Marshal(map[string]string{"username": "admin", "password": "admin123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d; want 200 (%s)", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	session := cookies[0]

	// check with the session cookie
	req = httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("check status = %d; want 200", rec.Code)
	}

	// logout clears the cookie
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d; want 200", rec.Code)
	}

	// check without a cookie fails
	req = httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("check status without cookie = %d; want 401", rec.Code)
	}
}

func TestRouter_CategoryCreateRequiresSession(t *testing.T) {
	router, codec, fake := newTestRouter(t, t.TempDir())

	b, _ := json.Marshal(map[string]string{"name": "Travel"})
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(b))
	req.Header.Set("Cookie", auth.CookieName+"="+codec.Issue())
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", rec.Code, rec.Body.String())
	}

	var got models.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got.ID == "" || fake.createdName != "Travel" {
		t.Errorf("create not forwarded: body=%+v forwarded=%q", got, fake.createdName)
	}
}

func TestRouter_AdminGate(t *testing.T) {
	router, codec, _ := newTestRouter(t, t.TempDir())

	// unauthenticated dashboard navigation redirects to the login page
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin/login" {
		t.Errorf("got %d → %q; want 302 → /admin/login", rec.Code, rec.Header().Get("Location"))
	}

	// authenticated login navigation redirects to the dashboard
	req = httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.Header.Set("Cookie", auth.CookieName+"="+codec.Issue())
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin/dashboard" {
		t.Errorf("got %d → %q; want 302 → /admin/dashboard", rec.Code, rec.Header().Get("Location"))
	}

	// authenticated dashboard renders
	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Cookie", auth.CookieName+"="+codec.Issue())
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("dashboard status = %d; want 200", rec.Code)
	}
}

func TestRouter_ServesUploads(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pier.jpg"), []byte("imagebytes"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	router, _, _ := newTestRouter(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/uploads/pier.jpg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if rec.Body.String() != "imagebytes" {
		t.Errorf("body = %q; want stored image bytes", rec.Body.String())
	}
}
