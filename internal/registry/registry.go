// Package registry manages format-specific parsers for raw photo file types.
package registry

import (
	"io"

	"github.com/simonhull/cr3meta/internal/types"
)

// FormatParser is the interface all format parsers implement.
type FormatParser interface {
	// Parse extracts metadata from a file. It never fails: structural
	// problems degrade into Warnings on the returned record.
	Parse(r io.ReaderAt, size int64, path string, cfg types.ParseConfig) *types.Metadata
}

// parsers maps formats to their parsers.
var parsers = make(map[types.Format]FormatParser)

// Register registers a parser for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, parser FormatParser) {
	parsers[format] = parser
}

// Get returns the parser for a given format.
// Returns nil if no parser is registered for the format.
func Get(format types.Format) FormatParser {
	return parsers[format]
}
