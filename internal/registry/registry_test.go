package registry

import (
	"io"
	"testing"

	"github.com/simonhull/cr3meta/internal/types"
)

type fakeParser struct{}

func (fakeParser) Parse(r io.ReaderAt, size int64, path string, cfg types.ParseConfig) *types.Metadata {
	return types.NewMetadata(path)
}

func TestRegisterAndGet(t *testing.T) {
	p := fakeParser{}
	Register(types.FormatCR3, p)

	if got := Get(types.FormatCR3); got == nil {
		t.Fatal("expected registered parser")
	}

	if got := Get(types.FormatUnknown); got != nil {
		t.Error("expected nil for unregistered format")
	}
}
