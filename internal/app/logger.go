package app

import (
	"log/slog"
	"os"
)

// NewLogger returns a configured slog.Logger based on configuration. JSON
// output is meant for production; text for local development.
func NewLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true}
	if cfg != nil && cfg.IsProduction() {
		opts.Level = slog.LevelInfo
	} else {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg != nil && cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With(slog.String("service", "xnn-portal"))
}
