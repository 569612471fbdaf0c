// Package exifdec decodes TIFF/EXIF tag streams into name → value maps.
//
// Each Canon CMT block is a standalone TIFF byte stream: CMT1 holds the main
// image IFD, CMT2 the Exif IFD, CMT3 the Canon maker note and CMT4 the GPS
// IFD, each stored as IFD0 of its own little TIFF. The decoder names tags the
// way per-block decoding surfaces them: IFD0 tags get an "Image " prefix,
// fields reached through an Exif sub-IFD pointer get "EXIF ", and Canon
// maker note tags get "MakerNote ".
package exifdec

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

func init() {
	// Maker note parsing for blocks that embed a real MakerNote tag
	exif.RegisterParsers(mknote.All...)
}

// tagNames maps the TIFF/EXIF tag IDs the mapper cares about to their base
// field names.
var tagNames = map[uint16]string{
	0x010F: "Make",
	0x0110: "Model",
	0x0132: "DateTime",
	0x829A: "ExposureTime",
	0x829D: "FNumber",
	0x8827: "ISOSpeedRatings",
	0x9003: "DateTimeOriginal",
	0x920A: "FocalLength",
	0xA434: "LensModel",
}

// canonLensModel is the Canon maker note tag carrying the lens model string.
const canonLensModel = 0x0095

// subIFDNames are fields that conventionally live in the Exif sub-IFD rather
// than IFD0 of a full TIFF.
var subIFDNames = map[exif.FieldName]bool{
	exif.DateTimeOriginal: true,
	exif.ExposureTime:     true,
	exif.FNumber:          true,
	exif.ISOSpeedRatings:  true,
	exif.FocalLength:      true,
	exif.LensModel:        true,
}

// ifd0Names are fields reported under the image-IFD prefix.
var ifd0Names = map[exif.FieldName]bool{
	exif.Make:     true,
	exif.Model:    true,
	exif.DateTime: true,
}

// Decoder is the default TagDecoder, backed by rwcarlsen/goexif.
type Decoder struct{}

// New returns a ready-to-use decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode parses a raw TIFF/EXIF byte block into a tag-name → value map.
//
// Malformed input yields an empty or partial map, never a panic: the input
// comes straight out of untrusted box payloads.
func (d *Decoder) Decode(data []byte) (tags map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			tags = map[string]string{}
			err = fmt.Errorf("tag stream decode panicked: %v", r)
		}
	}()

	tags = make(map[string]string)

	// Primary pass: raw TIFF directory walk. Standalone CMT blocks keep all
	// their tags in IFD0, so this is where almost everything comes from.
	tif, tiffErr := tiff.Decode(bytes.NewReader(data))
	if tiffErr == nil {
		for _, dir := range tif.Dirs {
			for _, tag := range dir.Tags {
				if tag.Id == canonLensModel && tag.Type == tiff.DTAscii {
					setIfAbsent(tags, "MakerNote LensModel", renderTag(tag))
					continue
				}
				if name, ok := tagNames[tag.Id]; ok {
					setIfAbsent(tags, "Image "+name, renderTag(tag))
				}
			}
		}
	}

	// Enrichment pass: goexif follows Exif sub-IFD pointers and maker notes
	// that the flat directory walk does not.
	if x, exifErr := exif.Decode(bytes.NewReader(data)); exifErr == nil {
		x.Walk(&fieldCollector{tags: tags})
	} else if tiffErr != nil {
		return map[string]string{}, fmt.Errorf("not a decodable tag stream: %w", tiffErr)
	}

	return tags, nil
}

// fieldCollector adapts the decoder's output map to goexif's walker.
type fieldCollector struct {
	tags map[string]string
}

func (c *fieldCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	switch {
	case ifd0Names[name]:
		setIfAbsent(c.tags, "Image "+string(name), renderTag(tag))
	case subIFDNames[name]:
		setIfAbsent(c.tags, "EXIF "+string(name), renderTag(tag))
	}
	return nil
}

func setIfAbsent(tags map[string]string, key, value string) {
	if value == "" {
		return
	}
	if _, ok := tags[key]; !ok {
		tags[key] = value
	}
}

// renderTag renders a single tag value as a string. Rationals keep their
// "num/den" form so downstream normalization can decide how to present them.
func renderTag(t *tiff.Tag) string {
	switch t.Type {
	case tiff.DTAscii:
		s, err := t.StringVal()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.TrimRight(s, "\x00"))
	case tiff.DTRational, tiff.DTSRational:
		num, den, err := t.Rat2(0)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%d/%d", num, den)
	case tiff.DTByte, tiff.DTShort, tiff.DTLong, tiff.DTSByte, tiff.DTSShort, tiff.DTSLong:
		v, err := t.Int64(0)
		if err != nil {
			return ""
		}
		return strconv.FormatInt(v, 10)
	case tiff.DTFloat, tiff.DTDouble:
		v, err := t.Float(0)
		if err != nil {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.Trim(t.String(), `"`)
	}
}
