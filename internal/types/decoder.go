package types

import "log/slog"

// TagDecoder decodes a raw byte block containing an embedded TIFF/EXIF tag
// structure into a tag-name → value mapping.
//
// Implementations must never panic on malformed input: a block that cannot be
// decoded yields an empty (or partial) map and an error. The caller treats a
// decode failure for one block as skippable and continues with the others.
type TagDecoder interface {
	Decode(data []byte) (map[string]string, error)
}

// ParseConfig carries injected capabilities into a parser.
type ParseConfig struct {
	// Decoder decodes vendor tag blocks. Never nil once the public API has
	// applied defaults.
	Decoder TagDecoder

	// Logger receives debug-level traces of the box scan. Never nil once the
	// public API has applied defaults.
	Logger *slog.Logger
}
