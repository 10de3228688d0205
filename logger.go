package ggfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active package logger. Accessed atomically so that
// SetLogger can be called concurrently with filtering from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the diagnostics logger for ggfx and its sub-packages.
// By default, ggfx produces no log output.
//
// Pass nil to restore the default silent behavior. Pipelines created with
// [WithLogger] use their own logger instead.
//
// Log levels used by ggfx:
//   - [slog.LevelDebug]: skipped filters, abandoned parameter updates
//   - [slog.LevelWarn]: ignored inputs
//   - [slog.LevelError]: failures replaced by an error bitmap
//
// Example:
//
//	ggfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
// Sub-packages (filters/, view/) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
