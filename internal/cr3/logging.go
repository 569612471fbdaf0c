package cr3

import (
	"io"
	"log/slog"
)

// discardLogger returns a logger that drops everything. Used where no trace
// sink was injected.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
