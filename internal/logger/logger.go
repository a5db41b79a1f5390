// Package logger builds the zerolog logger used by the composition root.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config represents logger configuration
type Config struct {
	// Level is one of debug, info, warn, error. Anything else means warn.
	Level string
	// Pretty switches to human-readable console output.
	Pretty bool
	// Output defaults to os.Stderr; stdout is reserved for the demo text.
	Output io.Writer
}

// ParseLevel maps a level name to a zerolog level, falling back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// New returns a timestamped logger for cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Nop discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }
