// Package types holds the shared data model for CR3 metadata extraction.
package types

// Unknown is the sentinel value for fields that are absent or unparsable.
const Unknown = "Unknown"

// Metadata is the extraction result for a single CR3 file.
//
// Every field is always populated; fields that could not be extracted or
// normalized hold the literal string "Unknown". The record is constructed
// once per extraction and should not be mutated after it is returned.
type Metadata struct {
	// Path to the source file
	Path string

	// Detected format (CR3 or unknown)
	Format Format

	// Camera body manufacturer (e.g. "Canon")
	CameraMake string

	// Camera body model (e.g. "Canon EOS R5")
	CameraModel string

	// Attached lens model
	LensModel string

	// Normalized focal length (e.g. "50.0 mm")
	FocalLength string

	// Capture timestamp in "YYYY-MM-DD HH:MM:SS" form
	DateTaken string

	// Exposure time, typically a rational like "1/200"
	Exposure string

	// Aperture (FNumber), passed through as decoded
	Aperture string

	// ISO speed rating
	ISO string

	// Warnings encountered during extraction (non-fatal issues)
	Warnings []Warning
}

// NewMetadata returns a record with every field set to Unknown.
func NewMetadata(path string) *Metadata {
	return &Metadata{
		Path:        path,
		CameraMake:  Unknown,
		CameraModel: Unknown,
		LensModel:   Unknown,
		FocalLength: Unknown,
		DateTaken:   Unknown,
		Exposure:    Unknown,
		Aperture:    Unknown,
		ISO:         Unknown,
	}
}

// Map returns the record as a fixed-shape map. Every key is always present.
func (m *Metadata) Map() map[string]string {
	return map[string]string{
		"camera_make":  m.CameraMake,
		"camera_model": m.CameraModel,
		"lens_model":   m.LensModel,
		"focal_length": m.FocalLength,
		"date_taken":   m.DateTaken,
		"exposure":     m.Exposure,
		"aperture":     m.Aperture,
		"iso":          m.ISO,
	}
}

// Warn appends a warning to the record.
func (m *Metadata) Warn(stage, message string, offset int64) {
	m.Warnings = append(m.Warnings, Warning{
		Stage:   stage,
		Message: message,
		Offset:  offset,
	})
}
