package cr3

import (
	stdbinary "encoding/binary"
	"fmt"
	"io"

	"github.com/simonhull/cr3meta/internal/binary"
	"github.com/simonhull/cr3meta/internal/registry"
	"github.com/simonhull/cr3meta/internal/types"
)

// parser implements the registry.FormatParser interface
type parser struct{}

// Parse extracts camera metadata from a CR3 file.
//
// Parse never fails. Every structural problem - no moov container, truncated
// headers, undecodable vendor blocks - degrades into Warnings on the record,
// and the affected fields stay at Unknown. A caller batch-processing a
// directory must never be halted by a single corrupt file.
func (p *parser) Parse(r io.ReaderAt, size int64, path string, cfg types.ParseConfig) *types.Metadata {
	m := types.NewMetadata(path)
	m.Format = types.FormatCR3
	sr := binary.NewSafeReader(r, size, path)

	// The top level of the file is a flat sibling sequence; scan it for the
	// movie container without recursing.
	moov, err := findBox(sr, 0, size, "moov")
	if err != nil {
		m.Warn("scan", "no moov container found", 0)
		return m
	}
	cfg.Logger.Debug("found moov container", "offset", moov.Offset, "size", moov.Size)

	moovEnd := moov.Offset + int64(moov.Size)
	if moovEnd > size {
		moovEnd = size
	}

	blocks := make(map[string][]byte)
	collectTargets(sr, moov.DataOffset(), moovEnd, targetBoxes, blocks, cfg.Logger)

	if len(blocks) == 0 {
		m.Warn("scan", "no vendor tag blocks found in moov", moov.Offset)
		return m
	}

	// Decode each block independently: one broken block must not take the
	// others down with it.
	raw := make(map[string]string)
	for _, blockType := range targetBoxes {
		data, ok := blocks[blockType]
		if !ok {
			continue
		}
		tags, err := cfg.Decoder.Decode(data)
		if err != nil {
			m.Warn("decode", fmt.Sprintf("%s block: %v", blockType, err), 0)
			continue
		}
		mapBlockTags(blockType, tags, raw)
	}

	formatMetadata(raw, m)
	return m
}

// ExtractThumbnail returns the embedded JPEG preview from the THMB box
// inside the Canon metadata container.
//
// THMB payload layout: 1 byte version, 3 bytes flags, uint16 width, uint16
// height, uint32 jpeg length, 4 reserved bytes, then the JPEG data.
func ExtractThumbnail(r io.ReaderAt, size int64, path string) ([]byte, error) {
	sr := binary.NewSafeReader(r, size, path)

	moov, err := findBox(sr, 0, size, "moov")
	if err != nil {
		return nil, &types.UnsupportedFormatError{Path: path, Reason: "no moov container"}
	}

	moovEnd := moov.Offset + int64(moov.Size)
	if moovEnd > size {
		moovEnd = size
	}

	blocks := make(map[string][]byte)
	collectTargets(sr, moov.DataOffset(), moovEnd, []string{"THMB"}, blocks, discardLogger())

	data, ok := blocks["THMB"]
	if !ok {
		return nil, &types.UnsupportedFormatError{Path: path, Reason: "no THMB box"}
	}
	if len(data) < 16 {
		return nil, &types.CorruptedFileError{Path: path, Reason: "THMB box too small"}
	}

	jpegLen := int(stdbinary.BigEndian.Uint32(data[8:12]))
	if jpegLen <= 0 || 16+jpegLen > len(data) {
		return nil, &types.CorruptedFileError{Path: path, Reason: "THMB jpeg length out of range"}
	}

	return data[16 : 16+jpegLen], nil
}

// init registers the CR3 parser
func init() {
	registry.Register(types.FormatCR3, &parser{})
}
