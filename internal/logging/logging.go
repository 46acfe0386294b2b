// Package logging configures the tool's structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger. Diagnostics go to stderr so stdout
// stays clean for command output and --json.
func New(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
