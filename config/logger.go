package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "sportevents"

// NewLogger returns the process logger: JSON in production, text elsewhere.
// level is one of debug, info, warn, error; anything else means info.
func NewLogger(environment, level string) *slog.Logger {
	return newLogger(os.Stdout, environment, level)
}

func newLogger(w io.Writer, environment, level string) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl, AddSource: lvl == slog.LevelDebug}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", serviceName)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
