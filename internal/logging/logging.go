// Package logging builds the slog logger used for diagnostics. User-facing
// status output goes through pkg/render instead.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Config holds logger configuration.
type Config struct {
	Output io.Writer
	Debug  bool
	Format string // "text" (default) or "json"
	RunID  string // generated when empty
}

// New creates a logger tagged with a run_id. It returns the id so callers can
// surface it alongside the run's results.
func New(cfg Config) (*slog.Logger, string) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	return slog.New(handler).With("run_id", runID), runID
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
