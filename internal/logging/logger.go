// Package logging builds the leveled slog.Logger used by the rholaw CLI.
// Output goes through a tint handler: compact, colorized when the target
// is a terminal, plain otherwise.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "15:04:05"

// ParseLevel maps a level name to a slog.Level.
// Supported values: "debug", "info", "warn" (or "warning"), "error",
// case-insensitive. Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a supported level. The empty string
// is valid and means info.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

// New creates a leveled tint logger writing to w.
func New(level string, w io.Writer, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: TimeFormat,
		NoColor:    noColor,
	}))
}
