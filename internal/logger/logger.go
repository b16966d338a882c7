// Package logger provides a thin wrapper around zap with runtime
// level configuration.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Logger wraps a zap.Logger so the level can be configured after construction.
type Logger struct {
	// Log is the underlying zap logger.
	Log *zap.Logger
}

// New returns a Logger with a production zap logger at the default level.
func New() *Logger {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return &Logger{Log: log}
}

// Init rebuilds the underlying logger at the given level
// ("debug", "info", "warn", "error"). Returns an error for
// unknown levels, leaving the current logger in place.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	l.Log = log
	return nil
}
