package cr3

import (
	"strconv"
	"strings"
	"time"

	"github.com/simonhull/cr3meta/internal/types"
)

const (
	dateLayoutColon  = "2006:01:02 15:04:05" // EXIF wire form
	dateLayoutHyphen = "2006-01-02 15:04:05" // canonical output form
)

// normalizeDate re-emits an EXIF timestamp in the canonical hyphenated form.
//
// Strings matching neither accepted layout are passed through unchanged
// rather than forced to Unknown: a half-mangled date is still more useful
// for diagnostics than the sentinel.
func normalizeDate(raw string) string {
	for _, layout := range []string{dateLayoutColon, dateLayoutHyphen} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayoutHyphen)
		}
	}
	return raw
}

// normalizeFocalLength renders a focal length as a decimal with a "mm"
// suffix. Accepted inputs are rationals ("50/1"), plain decimals ("50.0")
// and already-suffixed values ("50.0 mm"). Anything unparsable, including a
// zero denominator, yields Unknown.
func normalizeFocalLength(raw string) string {
	if raw == types.Unknown {
		return types.Unknown
	}

	fields := strings.Fields(strings.TrimSpace(strings.ReplaceAll(raw, "mm", "")))
	if len(fields) == 0 {
		return types.Unknown
	}
	value := fields[0]

	if num, den, ok := strings.Cut(value, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return types.Unknown
		}
		return strconv.FormatFloat(n/d, 'f', 1, 64) + " mm"
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return types.Unknown
	}
	// Shortest decimal rendering: "50.0" comes back as "50 mm"
	return strconv.FormatFloat(v, 'f', -1, 64) + " mm"
}

// formatMetadata normalizes the merged raw field map into the final record.
// Every field defaults to Unknown when its key is absent.
func formatMetadata(raw map[string]string, m *types.Metadata) {
	get := func(field string) string {
		if v, ok := raw[field]; ok && v != "" {
			return v
		}
		return types.Unknown
	}

	m.CameraMake = get("camera_make")
	m.CameraModel = get("camera_model")
	m.LensModel = get("lens_model")
	m.Exposure = get("exposure")
	m.Aperture = get("aperture")
	m.ISO = get("iso")
	m.DateTaken = normalizeDate(get("date_taken"))
	m.FocalLength = normalizeFocalLength(get("focal_length"))
}
