package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"photofolio/internal/auth"
	"photofolio/internal/middleware"
	"photofolio/internal/storage"
)

// NewRouter constructs the HTTP handler serving the portfolio.
//
// Routes:
//
//	POST /api/auth/login        → authHandler.Login
//	POST /api/auth/logout       → authHandler.Logout
//	GET  /api/auth/check        → authHandler.Check
//	GET  /api/categories        → categoryHandler.List (public)
//	POST /api/categories        → categoryHandler.Create
//	GET  /api/categories/{id}   → categoryHandler.Get (public)
//	DELETE /api/categories/{id} → categoryHandler.Delete
//	GET  /api/photos            → photoHandler.List (public, ?category= filters)
//	POST /api/photos            → photoHandler.Create (multipart)
//	GET  /api/photos/{id}       → photoHandler.Get (public)
//	PUT  /api/photos/{id}       → photoHandler.Update
//	DELETE /api/photos/{id}     → photoHandler.Delete
//	GET  /uploads/*             → stored image files
//	GET  /admin/login, /admin/dashboard → admin pages behind the AdminGate
//
// Mutating API routes re-check the session themselves; the AdminGate
// only guards browser navigation under /admin.
func NewRouter(
	authHandler *AuthHandler,
	categoryHandler *CategoryHandler,
	photoHandler *PhotoHandler,
	adminHandler *AdminHandler,
	codec *auth.TokenCodec,
	uploadDir string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Only allow requests with Content-Type: application/json
			r.Use(chiMiddleware.AllowContentType("application/json"))
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/check", authHandler.Check)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Post("/", categoryHandler.Create)
			r.Get("/{id}", categoryHandler.Get)
			r.Delete("/{id}", categoryHandler.Delete)
		})

		r.Route("/photos", func(r chi.Router) {
			r.Get("/", photoHandler.List)
			r.Post("/", photoHandler.Create)
			r.Get("/{id}", photoHandler.Get)
			r.Put("/{id}", photoHandler.Update)
			r.Delete("/{id}", photoHandler.Delete)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		// Redirect rules for browser navigation
		r.Use(middleware.AdminGate(codec))
		r.Get("/login", adminHandler.LoginPage)
		r.Get("/dashboard", adminHandler.Dashboard)
	})

	r.Handle(storage.PublicPrefix+"/*", http.StripPrefix(
		storage.PublicPrefix+"/",
		http.FileServer(http.Dir(uploadDir)),
	))

	return r
}
