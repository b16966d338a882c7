// Package main initializes and starts the photofolio server, setting up
// configuration, logging, the database, repositories, services and the
// HTTP router.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"photofolio/internal/auth"
	"photofolio/internal/config"
	"photofolio/internal/db"
	"photofolio/internal/logger"
	"photofolio/internal/repository"
	"photofolio/internal/server/handler/http"
	"photofolio/internal/service"
	"photofolio/internal/storage"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	opts := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(opts.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Open the database once; the handle is shared by every request.
	sqldb, err := db.InitSQLite(opts.DatabasePath, opts.AdminUsername, opts.AdminPassword)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Session token codec for the configured secret.
	codec := auth.NewTokenCodec(opts.AuthSecret)

	// Initialize repositories.
	categoryRepo := repository.NewCategoryRepository(sqldb)
	photoRepo := repository.NewPhotoRepository(sqldb)
	userRepo := repository.NewUserRepository(sqldb)

	// Initialize business-logic services.
	categoryService := service.NewCategoryService(categoryRepo, zapLogger)
	photoService := service.NewPhotoService(photoRepo, zapLogger)
	authService := service.NewAuthService(userRepo)

	// Image file store behind the upload routes.
	files := storage.NewFileStore(opts.UploadDir)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService, Codec: codec, Logger: zapLogger}
	categoryHandler := &http.CategoryHandler{Service: categoryService, Codec: codec, Logger: zapLogger}
	photoHandler := &http.PhotoHandler{Service: photoService, Files: files, Codec: codec, Logger: zapLogger}
	adminHandler := &http.AdminHandler{}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, categoryHandler, photoHandler, adminHandler, codec, opts.UploadDir, zapLogger)

	server := &nethttp.Server{
		Addr:    opts.Addr,
		Handler: router,
	}

	zapLogger.Info("starting server", zap.String("addr", opts.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}
