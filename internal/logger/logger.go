// Package logger reports process-level failures of the colorfield binary:
// errors that escape cobra before or after the configured logger exists.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	HumanReadable bool
	// Writer defaults to stderr; stdout carries the picked color.
	Writer io.Writer
}

// Logger is the fatal-path logger used by main.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger writing to opts.Writer.
func New(opts Options) *Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return &Logger{base: zerolog.New(output).With().Timestamp().Logger()}
}

// CommandFailed records err for the command at path and returns the exit
// status the process should end with.
func (l *Logger) CommandFailed(path string, err error) int {
	if l == nil || err == nil {
		return 0
	}
	l.base.Error().Err(err).Str("command", path).Msg("command failed")
	return 1
}
