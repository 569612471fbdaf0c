package cr3meta

import (
	"io"

	"github.com/simonhull/cr3meta/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to keep the public API at the root.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatCR3     = types.FormatCR3
)

// DetectFormat is a wrapper around types.DetectFormat.
// Maintains the public API while delegating to internal implementation.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
