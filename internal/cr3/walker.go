package cr3

import (
	"log/slog"
	"slices"

	"github.com/simonhull/cr3meta/internal/binary"
)

// collectTargets recursively scans the box sequence in [start, end) and
// copies the payload of every target box it finds into found, keyed by box
// type. Duplicate targets overwrite: last seen wins.
//
// The scan is deliberately forgiving. A broken header stops the current
// level but keeps whatever was collected before it, and a box whose declared
// size overruns the enclosing range has its payload clipped to that range.
//
// Sibling iteration always advances to box.Offset + box.Size, no matter how
// much of the payload a recursive descent actually interpreted. The declared
// size is authoritative for siblings; a box that lies about its size can
// therefore skip or re-read sibling data, which is accepted behavior, not a
// guarantee against adversarial files.
func collectTargets(sr *binary.SafeReader, start, end int64, targets []string, found map[string][]byte, log *slog.Logger) {
	offset := start

	for offset < end {
		box, err := readBoxHeader(sr, offset)
		if err != nil {
			// Stop this level, keep partial results
			log.Debug("box scan stopped", "offset", offset, "err", err)
			return
		}

		dataStart := box.DataOffset()
		dataEnd := box.Offset + int64(box.Size)
		if dataEnd > end {
			// Declared size is untrusted; clip to the enclosing range
			dataEnd = end
		}

		switch {
		case box.Type == "uuid":
			if uuid, ok := readUUID(sr, dataStart, dataEnd); ok && uuid == canonUUID {
				log.Debug("found Canon metadata uuid container", "offset", box.Offset)
				collectTargets(sr, dataStart+16, dataEnd, targets, found, log)
			}
			// Any other uuid payload is ignored entirely

		case slices.Contains(targets, box.Type):
			if data, ok := readPayload(sr, box.Type, dataStart, dataEnd); ok {
				log.Debug("found target box", "type", box.Type, "offset", box.Offset, "size", len(data))
				found[box.Type] = data
			}

		case containerBoxes[box.Type]:
			collectTargets(sr, dataStart, dataEnd, targets, found, log)
		}

		next := box.Offset + int64(box.Size)
		if next <= offset {
			// Forward progress guarantee: a non-advancing box ends the level
			log.Debug("non-advancing box", "type", box.Type, "offset", offset)
			return
		}
		offset = next
	}
}

// readUUID reads the 16-byte usertype prefix of a uuid box payload.
func readUUID(sr *binary.SafeReader, start, end int64) ([16]byte, bool) {
	var uuid [16]byte
	if end-start < 16 {
		return uuid, false
	}
	if err := sr.ReadAt(uuid[:], start, "uuid box usertype"); err != nil {
		return uuid, false
	}
	return uuid, true
}

// readPayload copies a box payload out of the reader. A zero-length payload
// is still a successful read: an empty target box counts as found.
func readPayload(sr *binary.SafeReader, boxType string, start, end int64) ([]byte, bool) {
	if end <= start {
		return []byte{}, true
	}
	data := make([]byte, end-start)
	if err := sr.ReadAt(data, start, boxType+" box payload"); err != nil {
		return nil, false
	}
	return data, true
}
