package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 40, G: 50, B: 60, A: 255},
	}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))

	FillPaletteRGBA(buf, cells, palette)

	want := []byte{
		10, 20, 30, 255,
		40, 50, 60, 255,
		40, 50, 60, 255, // out-of-range value clamps to the last entry
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	cells := []uint8{3, 4}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}
