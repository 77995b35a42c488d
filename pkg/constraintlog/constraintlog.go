// Package constraintlog provides a configurable logger shared by the
// constraint solver and its puzzle front-ends.
//
// The root logger defined by default uses github.com/rs/zerolog with a
// console writer. This mirrors gnark's logger package: a package-level
// zerolog.Logger that callers can override wholesale (Set), redirect
// (SetOutput), or silence (Disable), plus a per-component accessor.
package constraintlog

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// SetOutput changes the output writer of the global logger, keeping its
// current level and formatting.
func SetOutput(w *os.File) {
	logger = logger.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
}

// Set overrides the global logger wholesale.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences all logging.
func Disable() {
	logger = zerolog.Nop()
}

// SetLevel adjusts the global logger's minimum level.
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Logger returns the shared logger. Components that need a named
// sub-logger should call Logger().With().Str("component", name).Logger().
func Logger() zerolog.Logger {
	return logger
}
