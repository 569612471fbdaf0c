package cr3

import "github.com/simonhull/cr3meta/internal/types"

// fieldAliases lists the decoded tag names that can carry a raw field, in
// lookup order. The same logical tag surfaces under a generic image-IFD name
// or an Exif-sub-IFD name depending on which CMT block it lives in, and
// user-supplied decoders may emit the bare EXIF field names, so each field
// accepts several aliases.
type fieldAliases struct {
	field   string
	aliases []string
}

// blockFields maps each vendor block to the raw fields it contributes.
// The blocks cover disjoint field sets; CMT4 (GPS) is currently unused.
var blockFields = map[string][]fieldAliases{
	"CMT1": {
		{"camera_make", []string{"Image Make", "Make"}},
		{"camera_model", []string{"Image Model", "Model"}},
		{"date_taken", []string{"Image DateTime", "EXIF DateTimeOriginal", "DateTime", "DateTimeOriginal"}},
	},
	"CMT2": {
		{"focal_length", []string{"Image FocalLength", "EXIF FocalLength", "FocalLength"}},
		{"exposure", []string{"Image ExposureTime", "EXIF ExposureTime", "ExposureTime"}},
		{"aperture", []string{"Image FNumber", "EXIF FNumber", "FNumber"}},
		{"iso", []string{"Image ISOSpeedRatings", "EXIF ISOSpeedRatings", "ISOSpeedRatings"}},
	},
	"CMT3": {
		{"lens_model", []string{"MakerNote LensModel", "EXIF LensModel", "Image LensModel", "LensModel"}},
	},
	"CMT4": nil,
}

// mapBlockTags maps the decoded tags of one vendor block into the raw field
// map. Fields with no matching alias are set to Unknown, so a block that
// decoded but is missing a tag still pins its fields to the default.
func mapBlockTags(blockType string, tags map[string]string, raw map[string]string) {
	for _, f := range blockFields[blockType] {
		value := types.Unknown
		for _, alias := range f.aliases {
			if v, ok := tags[alias]; ok && v != "" {
				value = v
				break
			}
		}
		raw[f.field] = value
	}
}
