// Command cr3meta prints the camera metadata record for CR3 files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/simonhull/cr3meta"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug tracing of the box scan")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: cr3meta [-v] <file.cr3> [more files...]")
		os.Exit(1)
	}

	var opts []cr3meta.Option
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, cr3meta.WithLogger(logger))
	}

	for _, path := range flag.Args() {
		meta := cr3meta.Extract(path, opts...)

		fmt.Printf("%s\n", path)
		fmt.Printf("  Camera:       %s %s\n", meta.CameraMake, meta.CameraModel)
		fmt.Printf("  Lens:         %s\n", meta.LensModel)
		fmt.Printf("  Focal Length: %s\n", meta.FocalLength)
		fmt.Printf("  Date Taken:   %s\n", meta.DateTaken)
		fmt.Printf("  Exposure:     %s\n", meta.Exposure)
		fmt.Printf("  Aperture:     %s\n", meta.Aperture)
		fmt.Printf("  ISO:          %s\n", meta.ISO)

		for _, w := range meta.Warnings {
			fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
		}
	}
}
