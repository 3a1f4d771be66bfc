// Package logging builds the process-wide slog logger from config.
package logging

import (
	"io"
	"log/slog"

	corecfg "github.com/aevon-lab/grocery-tracker/internal/core/config"
)

// New returns a text or JSON logger writing to w at the configured level.
// An unknown level falls back to info and is reported once through the new logger.
func New(cfg corecfg.LogConfig, w io.Writer) *slog.Logger {
	level, ok := cfg.LogLevel()
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("[Logging] Unknown log level, using info", "level", cfg.Level)
	}
	return logger
}
