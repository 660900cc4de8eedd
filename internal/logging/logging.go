// SPDX-License-Identifier: MIT

// Package logging builds the loggers used across the module. Library code
// defaults to Nop and only logs at boundaries (dtype conversion, device
// fallback, stage timing at debug level); the CLI logs to stderr.
package logging

import (
	"io"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
)

// Logger is the leveled logger accepted by every WithLogger option.
type Logger = slog.Logger

// Nop returns a logger that discards everything.
func Nop() Logger {
	return logger.NewNopLogger()
}

// Stderr returns a logger writing to os.Stderr. Debug lines are emitted
// only when debug is true.
func Stderr(debug bool) Logger {
	return New(os.Stderr, debug)
}

// New returns a logger writing to w.
func New(w io.Writer, debug bool) Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   syncWriter{w},
		DepthDelta:   2,
		IncludeDebug: debug,
	})
}

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}

type syncWriter struct {
	io.Writer
}

// Sync flushes the wrapped writer when it supports it.
func (s syncWriter) Sync() error {
	if f, ok := s.Writer.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}
