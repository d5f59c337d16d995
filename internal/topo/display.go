package topo

import (
	"image/color"

	"pondtopo/internal/core"
)

// Display encoding packs a region into one byte for the palette painter.
const (
	displayBandMask        = 0x03
	displayVegetationShift = 2
	displayVegetationMask  = 0x0c
	displayLandBit         = 0x10
)

var pondPalette = buildPondPalette()

// Palette exposes the RGBA palette matching the DisplayGrid encoding.
func Palette() []color.RGBA { return pondPalette }

// DisplayGrid encodes the map into a byte grid for the palette painter.
func (m *Map) DisplayGrid() *core.ByteGrid {
	g := core.NewByteGrid(m.width, m.height)
	cells := g.Cells()
	for i, r := range m.regions {
		cells[i] = encodeDisplayValue(r)
	}
	return g
}

func encodeDisplayValue(r Region) uint8 {
	if r.Land {
		return displayLandBit
	}
	value := uint8(r.Band) & displayBandMask
	if r.Vegetation != VegetationNone {
		value |= (uint8(r.Vegetation) << displayVegetationShift) & displayVegetationMask
	}
	return value
}

func buildPondPalette() []color.RGBA {
	palette := make([]color.RGBA, 32)
	for i := range palette {
		if i&displayLandBit != 0 {
			palette[i] = color.RGBA{R: 186, G: 160, B: 110, A: 255}
			continue
		}
		band := BandName(i & displayBandMask)
		veg := Vegetation((i & displayVegetationMask) >> displayVegetationShift)
		palette[i] = displayColorFor(band, veg)
	}
	return palette
}

func displayColorFor(band BandName, veg Vegetation) color.RGBA {
	switch veg {
	case VegetationGrass:
		return color.RGBA{R: 95, G: 175, B: 90, A: 255}
	case VegetationReeds:
		return color.RGBA{R: 60, G: 145, B: 75, A: 255}
	case VegetationMats:
		return color.RGBA{R: 35, G: 115, B: 70, A: 255}
	}

	switch band {
	case BandSuperShallow:
		return color.RGBA{R: 120, G: 185, B: 220, A: 255}
	case BandShallow:
		return color.RGBA{R: 70, G: 140, B: 205, A: 255}
	case BandMidDepth:
		return color.RGBA{R: 40, G: 95, B: 175, A: 255}
	default:
		return color.RGBA{R: 18, G: 55, B: 120, A: 255}
	}
}
