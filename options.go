package cr3meta

import (
	"io"
	"log/slog"

	"github.com/simonhull/cr3meta/internal/exifdec"
	"github.com/simonhull/cr3meta/internal/types"
)

// Option configures behavior when extracting metadata.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	meta := cr3meta.Extract("photo.CR3",
//	    cr3meta.WithLogger(logger),
//	)
type Option func(*extractOptions)

// extractOptions holds configuration for extraction.
type extractOptions struct {
	decoder types.TagDecoder // Tag stream decoder for the CMT blocks
	logger  *slog.Logger     // Debug trace sink
}

// defaultOptions returns the default configuration.
func defaultOptions() *extractOptions {
	return &extractOptions{
		decoder: exifdec.New(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDecoder supplies a custom TIFF/EXIF tag stream decoder.
//
// The decoder receives the raw payload of each CMT block and returns a
// tag-name → value map. It must tolerate malformed input, returning an
// empty or partial map rather than panicking.
//
// The default decoder is backed by rwcarlsen/goexif. Supplying a stub
// decoder is the intended way to test mapping and formatting behavior
// without crafting real TIFF streams.
func WithDecoder(d TagDecoder) Option {
	return func(o *extractOptions) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithLogger sends debug-level traces of the box scan to the given logger.
//
// By default all traces are discarded. The logger is consulted at the
// points that matter when diagnosing a file that yields an all-Unknown
// record: moov location, Canon uuid unwrap, target block capture, and any
// scan stop.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	}))
//	meta := cr3meta.Extract("photo.CR3", cr3meta.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(o *extractOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
