package core

import "fmt"

// Size describes the dimensions of a 2D grid.
type Size struct {
	W int
	H int
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order. The
// display encoding of a generated map lives in one of these.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y). Out-of-range
// coordinates are an internal defect and panic with the offending pair.
func (g *ByteGrid) Index(x, y int) int {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		panic(fmt.Sprintf("core: grid index (%d,%d) out of range for %dx%d", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
