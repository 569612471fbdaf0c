package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Useful test file to confirm what we're able to actually read from the different boxes.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: box-dump <file.cr3>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	dumpBoxes(f, 0, 0, 0)
}

var canonUUID = []byte{
	0x85, 0xc0, 0xb6, 0x87, 0x82, 0x0f, 0x11, 0xe0,
	0x81, 0x11, 0xf4, 0xce, 0x46, 0x2b, 0x6a, 0x48,
}

func dumpBoxes(r io.ReaderAt, offset int64, end int64, depth int) {
	if end == 0 {
		// Get file size
		if f, ok := r.(*os.File); ok {
			stat, _ := f.Stat()
			end = stat.Size()
		}
	}

	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	for offset < end {
		// Read box header
		header := make([]byte, 8)
		if _, err := r.ReadAt(header, offset); err != nil {
			return
		}

		size := binary.BigEndian.Uint32(header[0:4])
		boxType := string(header[4:8])

		// Handle extended size
		boxSize := uint64(size)
		headerSize := int64(8)
		if size == 1 {
			extSize := make([]byte, 8)
			r.ReadAt(extSize, offset+8)
			boxSize = binary.BigEndian.Uint64(extSize)
			headerSize = 16
		}

		fmt.Printf("%s%s (size: %d, offset: %d)\n", indent, boxType, boxSize, offset)

		// Recurse into container boxes
		if isContainer(boxType) {
			dataOffset := offset + headerSize
			dataEnd := offset + int64(boxSize)
			dumpBoxes(r, dataOffset, dataEnd, depth+1)
		}

		// Canon metadata container: uuid box with the Canon usertype prefix
		if boxType == "uuid" {
			uuid := make([]byte, 16)
			if _, err := r.ReadAt(uuid, offset+headerSize); err == nil && bytes.Equal(uuid, canonUUID) {
				fmt.Printf("%s  (Canon metadata container)\n", indent)
				dumpBoxes(r, offset+headerSize+16, offset+int64(boxSize), depth+1)
			}
		}

		offset += int64(boxSize)

		if boxSize == 0 {
			break
		}
	}
}

func isContainer(boxType string) bool {
	containers := map[string]bool{
		"moov": true,
		"trak": true,
		"mdia": true,
		"minf": true,
		"stbl": true,
		"udta": true,
	}
	return containers[boxType]
}
