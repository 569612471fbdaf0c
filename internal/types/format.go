package types

import (
	"io"

	"github.com/simonhull/cr3meta/internal/binary"
)

// Format represents the detected file format
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatCR3 represents Canon CR3 raw photo files.
	FormatCR3
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatCR3:
		return "CR3"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatCR3:
		return []string{".cr3"}
	default:
		return nil
	}
}

// DetectFormat determines whether the file is a Canon CR3 by examining the
// leading ftyp box.
//
// CR3 files are ISO-BMFF containers whose ftyp box declares the "crx " major
// brand. Detection reads only the file header and does not validate the full
// box structure.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	// Minimum ftyp box: size + type + major brand + minor version
	if size < 16 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	boxType := make([]byte, 4)
	if err := sr.ReadAt(boxType, 4, "ftyp box type"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}
	if string(boxType) != "ftyp" {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "missing ftyp box",
		}
	}

	brand := make([]byte, 4)
	if err := sr.ReadAt(brand, 8, "ftyp major brand"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read major brand",
		}
	}
	if string(brand) == "crx " {
		return FormatCR3, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "major brand '" + string(brand) + "' is not a CR3",
	}
}
