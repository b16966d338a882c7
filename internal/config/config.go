// Package config provides functionality for managing configuration options
// for the application using environment variables, an optional .env file and
// command-line flags.
package config

import (
	"flag"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string `env:"SERVER_ADDRESS"`

	// DatabasePath is the path to the sqlite database file.
	DatabasePath string `env:"DATABASE_PATH"`

	// AuthSecret is the shared secret embedded in session tokens.
	// Rotating it invalidates every outstanding session.
	AuthSecret string `env:"AUTH_SECRET"`

	// AdminUsername and AdminPassword seed the administrator account
	// on first start.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// UploadDir is the directory where uploaded images are stored.
	UploadDir string `env:"UPLOAD_DIR"`

	// LogLevel sets the minimum log level.
	LogLevel string `env:"LOG_LEVEL"`
}

// Parse loads configuration from a .env file (if present), environment
// variables and command-line flags, in that order: flags override
// environment values only when passed explicitly. It returns a pointer
// to the Options struct containing the final configuration values.
func Parse() *Options {
	_ = godotenv.Load()

	opts := &Options{}
	_ = env.Parse(opts)

	flag.StringVar(&opts.Addr, "a", opts.Addr, "run on ip:port server")
	flag.StringVar(&opts.DatabasePath, "d", opts.DatabasePath, "path to sqlite database file")
	flag.StringVar(&opts.AuthSecret, "auth-secret", opts.AuthSecret, "shared secret for session tokens")
	flag.StringVar(&opts.UploadDir, "upload-dir", opts.UploadDir, "directory for uploaded images")
	flag.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "minimum log level")
	flag.Parse()

	if opts.Addr == "" {
		opts.Addr = "localhost:8080"
	}
	if opts.DatabasePath == "" {
		opts.DatabasePath = "photos.db"
	}
	if opts.AuthSecret == "" {
		// The secret must not contain "-": it is the token field delimiter.
		opts.AuthSecret = "yoursecretkey"
	}
	if opts.AdminUsername == "" {
		opts.AdminUsername = "admin"
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "admin123"
	}
	if opts.UploadDir == "" {
		opts.UploadDir = filepath.Join("public", "uploads")
	}
	if opts.LogLevel == "" {
		opts.LogLevel = "info"
	}

	return opts
}
