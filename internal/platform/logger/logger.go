package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Handlers and services take it
// as a dependency instead of reaching for a global.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
