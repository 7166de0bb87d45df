package logger

import (
	"log/slog"
	"os"
)

// New returns a structured text logger writing to stderr, keeping stdout free
// for the verdict message in the CLI.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
