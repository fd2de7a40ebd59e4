// Package logging configures the default slog logger for pint diagnostics.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Init creates and sets the package-level default slog logger. Diagnostics
// use a TextHandler on w so they never mix with the report on stdout.
func Init(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelWarn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
