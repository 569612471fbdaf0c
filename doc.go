// Package cr3meta extracts camera metadata from Canon CR3 raw photo files.
//
// CR3 files are ISO-BMFF containers (the same nested box structure as
// MP4/MOV) in which Canon embeds vendor TIFF/EXIF byte streams carrying
// camera, lens and exposure metadata. cr3meta walks the box tree, unwraps
// Canon's uuid-identified metadata container, decodes the four CMT vendor
// blocks and normalizes the result into a fixed-shape record.
//
// # Quick Start
//
// Reading metadata from a CR3 file:
//
//	meta := cr3meta.Extract("photo.CR3")
//	fmt.Printf("%s %s\n", meta.CameraMake, meta.CameraModel)
//	fmt.Printf("Taken: %s at %s\n", meta.DateTaken, meta.FocalLength)
//
// # Philosophy
//
// Extraction is strictly best-effort: Extract never returns an error and
// never panics, no matter how truncated or malformed the input is. Fields
// that could not be extracted hold the literal string "Unknown", and
// non-fatal issues are collected as warnings:
//
//	if len(meta.Warnings) > 0 {
//		for _, w := range meta.Warnings {
//			log.Printf("warning: %s", w)
//		}
//	}
//
// This contract exists so that a batch-processing caller is never halted by
// a single corrupt file.
//
// # Architecture
//
// The library uses a layered architecture:
//
//	[Extract]            - Entry point, never fails
//	  ├─ box walker      - recursive descent over moov/trak/mdia/minf/udta
//	  ├─ Canon uuid      - vendor container unwrap (fixed 16-byte identifier)
//	  ├─ tag decoder     - TIFF/EXIF stream decoding (rwcarlsen/goexif)
//	  └─ formatter       - date and focal length normalization
//
// The tag decoder is an injectable capability: pass WithDecoder to supply
// your own TIFF/EXIF decoding, for example in tests.
//
// # Concurrency
//
// Extract holds no shared state and is safe to call concurrently for
// different files. ExtractMany parallelizes across files:
//
//	records, err := cr3meta.ExtractMany(ctx, paths...)
//
// # Thumbnails
//
// CR3 files carry an embedded JPEG preview, available separately:
//
//	jpeg, err := cr3meta.ExtractThumbnail("photo.CR3")
package cr3meta
