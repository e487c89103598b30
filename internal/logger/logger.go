// Package logger builds the application's zerolog logger from config.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/reqschema/internal/config"
)

// New returns a logger writing to stderr.
func New(cfg *config.Config) *zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter returns a logger writing to w.
//
// Format "console" gives human-readable output (never in production);
// anything else is JSON. An unparseable level falls back to info.
func NewWithWriter(cfg *config.Config, w io.Writer) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Logging.Format == "console" && !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}
