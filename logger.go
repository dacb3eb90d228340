package anima

import (
	"log/slog"

	"github.com/phanxgames/anima/internal/logging"
)

// SetLogger sets the logger used by anima and its sub-packages. By default
// all output is discarded. Passing nil restores the silent default.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	return logging.Logger()
}
