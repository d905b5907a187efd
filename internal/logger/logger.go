// Package logger wraps zerolog.Logger for the brandkit CLI.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error) is available directly. Diagnostics go to stderr as plain
// "LEVEL message key=value" lines; stdout is reserved for command output.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Verbosity selects how much is logged.
type Verbosity int

// Verbosity levels, from --quiet to --verbose.
const (
	Quiet   Verbosity = iota // errors only
	Normal                   // warnings and errors
	Verbose                  // everything, including debug
)

// New returns a Logger writing human-readable lines to w.
// The level is set on the logger itself, never globally, so concurrent
// tests can use different verbosities.
func New(w io.Writer, v Verbosity) *Logger {
	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	l := zerolog.New(console).Level(v.level()).With().Logger()
	return &Logger{l}
}

// Nop returns a Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child Logger carrying the given string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

func (v Verbosity) level() zerolog.Level {
	switch v {
	case Quiet:
		return zerolog.ErrorLevel
	case Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.WarnLevel
	}
}
