package types

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func ftypFile(brand string) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(16))
	buf.WriteString("ftyp")
	buf.WriteString(brand)
	binary.Write(buf, binary.BigEndian, uint32(1)) // minor version
	return buf.Bytes()
}

func TestDetectFormat_CR3(t *testing.T) {
	data := ftypFile("crx ")

	format, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.cr3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatCR3 {
		t.Errorf("expected FormatCR3, got %v", format)
	}
}

func TestDetectFormat_ForeignBrand(t *testing.T) {
	data := ftypFile("isom")

	format, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.mp4")
	if err == nil {
		t.Fatal("expected an error for a non-CR3 brand")
	}
	if format != FormatUnknown {
		t.Errorf("expected FormatUnknown, got %v", format)
	}
}

func TestDetectFormat_NoFtyp(t *testing.T) {
	data := []byte("this is not a box structure at all")

	format, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.bin")
	if err == nil {
		t.Fatal("expected an error for missing ftyp")
	}
	if format != FormatUnknown {
		t.Errorf("expected FormatUnknown, got %v", format)
	}
}

func TestDetectFormat_TooSmall(t *testing.T) {
	data := []byte{0x00, 0x00}

	_, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.bin")
	if err == nil {
		t.Fatal("expected an error for a tiny file")
	}
}

func TestFormat_String(t *testing.T) {
	if FormatCR3.String() != "CR3" {
		t.Errorf("FormatCR3.String() = %q", FormatCR3.String())
	}
	if FormatUnknown.String() != "Unknown" {
		t.Errorf("FormatUnknown.String() = %q", FormatUnknown.String())
	}
}

func TestFormat_Extensions(t *testing.T) {
	exts := FormatCR3.Extensions()
	if len(exts) != 1 || exts[0] != ".cr3" {
		t.Errorf("FormatCR3.Extensions() = %v", exts)
	}
	if FormatUnknown.Extensions() != nil {
		t.Errorf("FormatUnknown.Extensions() = %v", FormatUnknown.Extensions())
	}
}
