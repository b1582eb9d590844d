// Package cli implements the patterndb command-line interface.
//
// This package provides commands for generating pattern databases over
// permutation state spaces, querying them, serving heuristic values over
// HTTP, and rendering small abstract spaces. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - gen: run the backward search and write a database file
//   - query: load one or more databases and evaluate a permutation
//   - info: print database metadata without evaluating anything
//   - serve: expose loaded databases over HTTP
//   - viz: render a small abstract space as DOT or SVG
//   - cache: manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so every command reports through the
// same channel.
//
// # Failure contract
//
// Commands print a single "Error: <message>" line to stderr and exit
// non-zero. Writers use rename-into-place, so failed runs leave no
// partial database files behind.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting. The logger
// writes to w and filters messages at the specified level. Timestamps
// are formatted as "HH:MM:SS.cc", with hundredths of a second (e.g.,
// "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch tracks the start time of an operation and logs completion
// with elapsed duration.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

// newStopwatch captures the current time as start.
func newStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the stopwatch was
// created, rounded to the nearest millisecond.
func (s *stopwatch) done(msg string) {
	s.logger.Infof("%s (%s)", msg, time.Since(s.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package. Using a
// distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx. If no logger is
// attached, it returns log.Default() so commands always have a valid
// logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
