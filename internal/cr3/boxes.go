// Package cr3 provides Canon CR3 raw photo metadata extraction
package cr3

import (
	"errors"
	"fmt"

	"github.com/simonhull/cr3meta/internal/binary"
	"github.com/simonhull/cr3meta/internal/types"
)

// canonUUID is the 16-byte identifier of Canon's proprietary metadata
// container, found as the payload prefix of a uuid box inside moov.
var canonUUID = [16]byte{
	0x85, 0xc0, 0xb6, 0x87, 0x82, 0x0f, 0x11, 0xe0,
	0x81, 0x11, 0xf4, 0xce, 0x46, 0x2b, 0x6a, 0x48,
}

// targetBoxes are the four Canon vendor boxes embedding TIFF/EXIF tag
// streams. CMT1 carries the main image IFD (make, model, date), CMT2 the
// Exif IFD (exposure, focal length, ISO), CMT3 the Canon maker note (lens),
// CMT4 the GPS IFD.
var targetBoxes = []string{"CMT1", "CMT2", "CMT3", "CMT4"}

// containerBoxes are the box types whose payload is itself a box sequence
// and is worth descending into.
var containerBoxes = map[string]bool{
	"moov": true, // Movie container
	"trak": true, // Track container
	"mdia": true, // Media container
	"minf": true, // Media information
	"udta": true, // User data
}

// errBoxNotFound reports that a flat scan ran out of siblings.
var errBoxNotFound = errors.New("box not found")

// Box represents one ISO-BMFF box (atom).
type Box struct {
	Size     uint64 // Total size including header
	Type     string // 4-character type code
	Offset   int64  // Position in the enclosing reader
	Extended bool   // Whether this uses 64-bit extended size
}

// HeaderSize returns the size of the box header in bytes (8 or 16).
func (b *Box) HeaderSize() uint64 {
	if b.Extended {
		return 16
	}
	return 8
}

// DataSize returns the size of the box's payload (excluding header).
func (b *Box) DataSize() uint64 {
	h := b.HeaderSize()
	if b.Size < h {
		return 0
	}
	return b.Size - h
}

// DataOffset returns the offset where the box's payload starts.
func (b *Box) DataOffset() int64 {
	return b.Offset + int64(b.HeaderSize())
}

// readBoxHeader reads a box header at the given offset.
//
// Any short read, and any declared size smaller than the header itself,
// yields an error. Callers treat that error as the stop-parsing-this-level
// signal: file contents are untrusted and a broken header means nothing past
// it on this level can be located reliably.
func readBoxHeader(sr *binary.SafeReader, offset int64) (*Box, error) {
	size32, err := binary.Read[uint32](sr, offset, "box size")
	if err != nil {
		return nil, err
	}

	typeBytes := make([]byte, 4)
	if err := sr.ReadAt(typeBytes, offset+4, "box type"); err != nil {
		return nil, err
	}

	box := &Box{
		Type:   string(typeBytes),
		Offset: offset,
	}

	// size == 1 means a 64-bit extended size follows the type code
	if size32 == 1 {
		size64, err := binary.Read[uint64](sr, offset+8, "extended box size")
		if err != nil {
			return nil, err
		}
		box.Size = size64
		box.Extended = true
	} else {
		box.Size = uint64(size32)
		box.Extended = false
	}

	if box.Size < box.HeaderSize() {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("invalid box size %d (minimum is %d)", box.Size, box.HeaderSize()),
		}
	}

	return box, nil
}

// findBox scans a flat sibling sequence for the first box of the given type.
//
// Sibling iteration trusts each declared size: the next box starts at
// box.Offset + box.Size regardless of the box's contents.
func findBox(sr *binary.SafeReader, start, end int64, boxType string) (*Box, error) {
	offset := start

	for offset < end {
		box, err := readBoxHeader(sr, offset)
		if err != nil {
			return nil, err
		}

		if box.Type == boxType {
			return box, nil
		}

		next := box.Offset + int64(box.Size)
		if next <= offset {
			// A non-advancing box would loop forever
			return nil, &types.CorruptedFileError{
				Path:   sr.Path(),
				Offset: offset,
				Reason: "box does not advance the scan",
			}
		}
		offset = next
	}

	return nil, errBoxNotFound
}
