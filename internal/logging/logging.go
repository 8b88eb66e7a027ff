// Package logging builds the slog loggers used across the module.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv switches every logger created by New to debug level when set.
const DebugEnv = "CUKEXPR_DEBUG"

// New creates a text logger on stderr tagged with the given component.
// Time and level attributes are dropped to keep the output compact.
func New(component string) *slog.Logger {
	return NewWithWriter(os.Stderr, component)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, component string) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv(DebugEnv) != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}

			return a
		},
	})

	return slog.New(handler).With("component", component)
}
