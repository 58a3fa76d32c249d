// Package loader reads the binary maze file format (§6 of
// SPEC_FULL.md) into a cellgrid.Grid, and verifies a proposed solution
// path by replaying it.
//
// File format (little-endian):
//
//	offset  size  field
//	0       4     width  (int32)
//	4       4     height (int32)
//	8       4     solvable (int32; nonzero = solvable)
//	12      ...   packed cell wall bits
//
// The packed bits are a row-major stream of 32-bit words, 16 cells
// per word in column-ascending order, 2 bits per cell (bit 0 = east
// wall, bit 1 = south wall). Excess bits in the last word of a row
// are ignored. This mirrors maze.cpp's Load(), translated from
// "read the whole file, cast the header" into a small streaming
// decoder over a buffered reader, since Go has no equivalent of
// casting a byte buffer onto a packed struct.
package loader

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/azulmaze/mazerunner/cellgrid"
	"github.com/azulmaze/mazerunner/position"
)

// Sentinel errors for Load.
var (
	// ErrTruncated indicates the file ended before the declared
	// header or packed-cell stream was fully read.
	ErrTruncated = errors.New("loader: file is shorter than its declared contents")

	// ErrInvalidDimensions indicates a non-positive width or height,
	// or dimensions that would overflow an int on this platform.
	ErrInvalidDimensions = errors.New("loader: width and height must be positive and not overflow")
)

const headerSize = 12
const cellsPerWord = 16

// header mirrors the file's first 12 bytes.
type header struct {
	Width, Height, Solvable int32
}

// Result is the parsed maze: the populated grid and whether the file
// header claims the maze is solvable.
type Result struct {
	Grid      *cellgrid.Grid
	Solvable  bool
}

// Load reads a maze file at path and returns its grid. It rejects
// truncated or malformed input cleanly (§9 Open Questions: the
// original source leaves misaligned/truncated input undefined; this
// port requires rejecting it).
func Load(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: opening %q: %w", path, err)
	}
	defer f.Close()

	return LoadFrom(bufio.NewReader(f))
}

// LoadFrom reads a maze from any io.Reader, for in-memory tests.
func LoadFrom(r io.Reader) (*Result, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("loader: reading header: %w", err)
	}

	width, height := int(hdr.Width), int(hdr.Height)
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width > (1<<31)/height {
		// guards the width*height multiplication used for grid
		// allocation against overflow on very large declared mazes.
		return nil, ErrInvalidDimensions
	}

	grid := cellgrid.New(width, height)
	wordsPerRow := (width + cellsPerWord - 1) / cellsPerWord

	for row := 0; row < height; row++ {
		col := 0
		for w := 0; w < wordsPerRow; w++ {
			var word uint32
			if err := binary.Read(r, binary.LittleEndian, &word); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return nil, ErrTruncated
				}
				return nil, fmt.Errorf("loader: reading row %d word %d: %w", row, w, err)
			}
			for slot := 0; slot < cellsPerWord && col < width; slot, col = slot+1, col+1 {
				bits := (word >> uint(slot*2)) & 0x3
				var cellBits uint32
				if bits&0x1 != 0 {
					cellBits |= cellgrid.BitEastWall
				}
				if bits&0x2 != 0 {
					cellBits |= cellgrid.BitSouthWall
				}
				grid.Set(position.Position{Row: row, Col: col}, cellBits)
			}
		}
	}

	return &Result{Grid: grid, Solvable: hdr.Solvable != 0}, nil
}
