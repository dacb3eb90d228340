// Package logging holds the logger shared by anima and its sub-packages.
// The root package exposes it through anima.SetLogger and anima.Logger; it
// lives here so that input and vmath can log without importing the root.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNop creates a logger that silently discards all output.
func NewNop() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(NewNop())
}

// Set stores l as the active logger. A nil logger restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger. It never returns nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Debug reports whether debug-level records would be emitted. Hot paths
// check it before building attributes.
func Debug() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
