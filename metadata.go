package cr3meta

import (
	"github.com/simonhull/cr3meta/internal/types"
)

// Metadata is an alias to types.Metadata.
// Re-exporting from internal/types to keep the public API at the root.
type Metadata = types.Metadata

// TagDecoder is an alias to types.TagDecoder.
// Re-exporting from internal/types to keep the public API at the root.
type TagDecoder = types.TagDecoder

// Unknown is the sentinel value for fields that are absent or unparsable.
const Unknown = types.Unknown

// NewMetadata returns a record for path with every field set to Unknown.
func NewMetadata(path string) *Metadata {
	return types.NewMetadata(path)
}
