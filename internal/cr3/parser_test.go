package cr3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/simonhull/cr3meta/internal/types"
)

// stubDecoder maps block payloads (as strings) to canned tag maps.
type stubDecoder struct {
	tags map[string]map[string]string
	errs map[string]error
}

func (d *stubDecoder) Decode(data []byte) (map[string]string, error) {
	if err, ok := d.errs[string(data)]; ok {
		return nil, err
	}
	if tags, ok := d.tags[string(data)]; ok {
		return tags, nil
	}
	return map[string]string{}, nil
}

func testConfig(d types.TagDecoder) types.ParseConfig {
	return types.ParseConfig{Decoder: d, Logger: discardLogger()}
}

// createCR3 assembles a minimal CR3: ftyp, then a moov wrapping the Canon
// uuid container with the given CMT payloads.
func createCR3(blocks map[string][]byte) []byte {
	ftypPayload := &bytes.Buffer{}
	ftypPayload.WriteString("crx ")
	binary.Write(ftypPayload, binary.BigEndian, uint32(1))
	ftypPayload.WriteString("crx ")
	ftyp := createMockBox("ftyp", ftypPayload.Bytes())

	inner := &bytes.Buffer{}
	for _, blockType := range targetBoxes {
		if data, ok := blocks[blockType]; ok {
			inner.Write(createMockBox(blockType, data))
		}
	}

	moov := createMockBox("moov", createUUIDBox(canonUUID, inner.Bytes()))
	return append(ftyp, moov...)
}

func TestParse_EndToEnd(t *testing.T) {
	data := createCR3(map[string][]byte{"CMT1": []byte("block1")})

	dec := &stubDecoder{tags: map[string]map[string]string{
		"block1": {
			"Image Make":     "Canon",
			"Image Model":    "EOS R5",
			"Image DateTime": "2023:07:04 10:15:30",
		},
	}}

	p := &parser{}
	m := p.Parse(bytes.NewReader(data), int64(len(data)), "test.cr3", testConfig(dec))

	if m.CameraMake != "Canon" {
		t.Errorf("CameraMake = %q", m.CameraMake)
	}
	if m.CameraModel != "EOS R5" {
		t.Errorf("CameraModel = %q", m.CameraModel)
	}
	if m.DateTaken != "2023-07-04 10:15:30" {
		t.Errorf("DateTaken = %q", m.DateTaken)
	}

	// Everything the other blocks would contribute stays Unknown
	for _, got := range []string{m.LensModel, m.FocalLength, m.Exposure, m.Aperture, m.ISO} {
		if got != types.Unknown {
			t.Errorf("expected Unknown, got %q", got)
		}
	}
}

func TestParse_AllBlocks(t *testing.T) {
	data := createCR3(map[string][]byte{
		"CMT1": []byte("b1"),
		"CMT2": []byte("b2"),
		"CMT3": []byte("b3"),
		"CMT4": []byte("b4"),
	})

	dec := &stubDecoder{tags: map[string]map[string]string{
		"b1": {"Image Make": "Canon", "Image Model": "EOS R5", "Image DateTime": "2023:07:04 10:15:30"},
		"b2": {"Image FocalLength": "50/1", "Image ExposureTime": "1/200", "Image FNumber": "28/10", "Image ISOSpeedRatings": "400"},
		"b3": {"MakerNote LensModel": "RF50mm F1.8 STM"},
	}}

	p := &parser{}
	m := p.Parse(bytes.NewReader(data), int64(len(data)), "test.cr3", testConfig(dec))

	want := map[string]string{
		"camera_make":  "Canon",
		"camera_model": "EOS R5",
		"lens_model":   "RF50mm F1.8 STM",
		"focal_length": "50.0 mm",
		"date_taken":   "2023-07-04 10:15:30",
		"exposure":     "1/200",
		"aperture":     "28/10",
		"iso":          "400",
	}
	got := m.Map()
	for key, w := range want {
		if got[key] != w {
			t.Errorf("%s = %q, want %q", key, got[key], w)
		}
	}
}

func TestParse_NoMoov(t *testing.T) {
	data := createMockBox("free", []byte("nothing here"))

	p := &parser{}
	m := p.Parse(bytes.NewReader(data), int64(len(data)), "test.cr3", testConfig(&stubDecoder{}))

	for key, value := range m.Map() {
		if value != types.Unknown {
			t.Errorf("field %s: expected Unknown, got %q", key, value)
		}
	}
	if len(m.Warnings) == 0 {
		t.Error("expected a warning about the missing moov container")
	}
}

func TestParse_EmptyFile(t *testing.T) {
	p := &parser{}
	m := p.Parse(bytes.NewReader(nil), 0, "test.cr3", testConfig(&stubDecoder{}))

	for key, value := range m.Map() {
		if value != types.Unknown {
			t.Errorf("field %s: expected Unknown, got %q", key, value)
		}
	}
}

func TestParse_NoTargetBlocks(t *testing.T) {
	// moov exists but holds nothing interesting
	moov := createMockBox("moov", createMockBox("free", []byte("x")))

	p := &parser{}
	m := p.Parse(bytes.NewReader(moov), int64(len(moov)), "test.cr3", testConfig(&stubDecoder{}))

	for key, value := range m.Map() {
		if value != types.Unknown {
			t.Errorf("field %s: expected Unknown, got %q", key, value)
		}
	}
	if len(m.Warnings) == 0 {
		t.Error("expected a warning about missing vendor tag blocks")
	}
}

func TestParse_DecodeFailureIsolated(t *testing.T) {
	// A failing CMT1 decode must not stop CMT2 from contributing.
	data := createCR3(map[string][]byte{
		"CMT1": []byte("bad"),
		"CMT2": []byte("good"),
	})

	dec := &stubDecoder{
		tags: map[string]map[string]string{
			"good": {"Image ISOSpeedRatings": "800"},
		},
		errs: map[string]error{
			"bad": errors.New("mangled tag stream"),
		},
	}

	p := &parser{}
	m := p.Parse(bytes.NewReader(data), int64(len(data)), "test.cr3", testConfig(dec))

	if m.ISO != "800" {
		t.Errorf("ISO = %q, want '800'", m.ISO)
	}
	if m.CameraMake != types.Unknown {
		t.Errorf("CameraMake = %q, want Unknown", m.CameraMake)
	}
	if len(m.Warnings) == 0 {
		t.Error("expected a decode warning for the failing block")
	}
}

func TestExtractThumbnail(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0xFF, 0xD9}

	thmb := &bytes.Buffer{}
	thmb.Write([]byte{0x00, 0x00, 0x00, 0x00})             // version + flags
	binary.Write(thmb, binary.BigEndian, uint16(160))      // width
	binary.Write(thmb, binary.BigEndian, uint16(120))      // height
	binary.Write(thmb, binary.BigEndian, uint32(len(jpeg))) // jpeg length
	thmb.Write([]byte{0x00, 0x00, 0x00, 0x00})             // reserved
	thmb.Write(jpeg)

	inner := createMockBox("THMB", thmb.Bytes())
	moov := createMockBox("moov", createUUIDBox(canonUUID, inner))

	got, err := ExtractThumbnail(bytes.NewReader(moov), int64(len(moov)), "test.cr3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, jpeg) {
		t.Errorf("thumbnail bytes mismatch: %v", got)
	}
}

func TestExtractThumbnail_Missing(t *testing.T) {
	moov := createMockBox("moov", createUUIDBox(canonUUID, nil))

	_, err := ExtractThumbnail(bytes.NewReader(moov), int64(len(moov)), "test.cr3")
	if err == nil {
		t.Fatal("expected an error for a file without THMB")
	}
}
