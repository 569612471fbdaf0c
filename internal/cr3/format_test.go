package cr3

import (
	"testing"

	"github.com/simonhull/cr3meta/internal/types"
)

func TestNormalizeDate_ColonForm(t *testing.T) {
	got := normalizeDate("2023:07:04 10:15:30")
	if got != "2023-07-04 10:15:30" {
		t.Errorf("expected '2023-07-04 10:15:30', got %q", got)
	}
}

func TestNormalizeDate_HyphenFormUnchanged(t *testing.T) {
	got := normalizeDate("2023-07-04 10:15:30")
	if got != "2023-07-04 10:15:30" {
		t.Errorf("expected '2023-07-04 10:15:30', got %q", got)
	}
}

func TestNormalizeDate_UnparsablePassesThrough(t *testing.T) {
	// Deliberate asymmetry: a bad date keeps its raw value for diagnostics
	// instead of collapsing to Unknown.
	got := normalizeDate("not a date")
	if got != "not a date" {
		t.Errorf("expected raw passthrough, got %q", got)
	}
}

func TestNormalizeFocalLength(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"50/1", "50.0 mm"},
		{"50.0 mm", "50 mm"},
		{"50", "50 mm"},
		{"85/1", "85.0 mm"},
		{"245/10", "24.5 mm"},
		{"0/0", types.Unknown},
		{"abc", types.Unknown},
		{"", types.Unknown},
		{types.Unknown, types.Unknown},
	}

	for _, c := range cases {
		if got := normalizeFocalLength(c.in); got != c.want {
			t.Errorf("normalizeFocalLength(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMetadata_Defaults(t *testing.T) {
	m := types.NewMetadata("test.cr3")
	formatMetadata(map[string]string{}, m)

	for key, value := range m.Map() {
		if value != types.Unknown {
			t.Errorf("field %s: expected Unknown, got %q", key, value)
		}
	}
}

func TestFormatMetadata_Passthrough(t *testing.T) {
	m := types.NewMetadata("test.cr3")
	formatMetadata(map[string]string{
		"camera_make":  "Canon",
		"camera_model": "EOS R5",
		"lens_model":   "RF24-70mm F2.8 L IS USM",
		"exposure":     "1/200",
		"aperture":     "28/10",
		"iso":          "400",
		"date_taken":   "2023:07:04 10:15:30",
		"focal_length": "50/1",
	}, m)

	if m.CameraMake != "Canon" || m.CameraModel != "EOS R5" {
		t.Errorf("camera fields not passed through: %q %q", m.CameraMake, m.CameraModel)
	}
	if m.Exposure != "1/200" || m.Aperture != "28/10" || m.ISO != "400" {
		t.Errorf("exposure fields not passed through: %q %q %q", m.Exposure, m.Aperture, m.ISO)
	}
	if m.DateTaken != "2023-07-04 10:15:30" {
		t.Errorf("date not normalized: %q", m.DateTaken)
	}
	if m.FocalLength != "50.0 mm" {
		t.Errorf("focal length not normalized: %q", m.FocalLength)
	}
}
