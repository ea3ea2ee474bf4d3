package ripple

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler keeps engines silent until a logger is installed.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

var (
	silent  = slog.New(nopHandler{})
	current atomic.Pointer[slog.Logger]
)

// SetLogger sets the package logger used by engines created without
// WithLogger. Pass nil to restore silence.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
