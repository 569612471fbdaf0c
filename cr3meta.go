package cr3meta

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/cr3meta/internal/cr3"
	"github.com/simonhull/cr3meta/internal/registry"
	"github.com/simonhull/cr3meta/internal/types"
)

// Extract reads camera metadata from the CR3 file at path.
//
// Extract never fails: problems opening or parsing the file degrade into
// Warnings on the returned record, and every field that could not be
// extracted holds the Unknown sentinel. The file handle is released on all
// paths before Extract returns.
//
// Example:
//
//	meta := cr3meta.Extract("photo.CR3")
//	fmt.Println(meta.CameraModel, meta.DateTaken)
func Extract(path string, opts ...Option) *Metadata {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	m := types.NewMetadata(path)

	f, err := os.Open(path)
	if err != nil {
		m.Warn("open", err.Error(), 0)
		return m
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		m.Warn("open", err.Error(), 0)
		return m
	}
	size := stat.Size()

	cfg := types.ParseConfig{
		Decoder: options.decoder,
		Logger:  options.logger,
	}

	// Detection is advisory: the box scan itself is what decides whether
	// metadata comes out, so a missing or foreign ftyp brand only warns.
	format, err := DetectFormat(f, size, path)
	if err != nil {
		m.Warn("open", err.Error(), 0)
	}

	parser := registry.Get(types.FormatCR3)
	result := parser.Parse(f, size, path, cfg)
	result.Format = format
	result.Warnings = append(m.Warnings, result.Warnings...)
	return result
}

// ExtractContext extracts metadata with context support for cancellation.
//
// The parser itself has no suspension points, so cancellation is only
// observed before parsing starts. A nil record is returned together with the
// context error when the context is already done.
func ExtractContext(ctx context.Context, path string, opts ...Option) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Extract(path, opts...), nil
}

// ExtractMany extracts metadata from multiple CR3 files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. Per-file
// problems surface as Warnings on the individual records, never as an
// error; the only returned error is context cancellation.
//
// Example:
//
//	records, err := cr3meta.ExtractMany(ctx, paths...)
//	if err != nil {
//		return err
//	}
//	for _, m := range records {
//		fmt.Println(m.Path, m.DateTaken)
//	}
func ExtractMany(ctx context.Context, paths ...string) ([]*Metadata, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Metadata, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = Extract(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ExtractThumbnail returns the embedded JPEG preview from a CR3 file.
//
// Unlike Extract, this can fail: a file without a readable THMB box yields
// an error instead of a default value.
func ExtractThumbnail(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return cr3.ExtractThumbnail(f, stat.Size(), path)
}
