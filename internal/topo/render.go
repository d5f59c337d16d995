package topo

import "strings"

// ANSI escape sequences used by the colored text rendering.
const (
	ansiReset  = "\x1b[0m"
	ansiBlue   = "\x1b[34m"
	ansiGreen  = "\x1b[32m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

const landGlyph = '#'

var bandGlyphs = [...]rune{
	BandSuperShallow: '░',
	BandShallow:      '▒',
	BandMidDepth:     '▓',
	BandDeep:         '█',
}

var vegetationGlyphs = [...]rune{
	VegetationGrass: '„',
	VegetationReeds: '¥',
	VegetationMats:  '¬',
}

var structureGlyphs = [...]rune{
	StructureChunkRock: '¤',
	StructureBoulder:   '®',
	StructureTimber:    '˜',
	StructureBrush:     '×',
}

var structureColors = [...]string{
	StructureChunkRock: ansiRed,
	StructureBoulder:   ansiRed,
	StructureTimber:    ansiYellow,
	StructureBrush:     ansiYellow,
}

// Glyph returns the display rune for a region. Vegetation takes priority over
// structure, which takes priority over the depth-band shade.
func Glyph(r Region) rune {
	if r.Land {
		return landGlyph
	}
	if r.Vegetation != VegetationNone {
		return vegetationGlyphs[r.Vegetation]
	}
	if r.Structure != StructureNone {
		return structureGlyphs[r.Structure]
	}
	return bandGlyphs[r.Band]
}

// glyphColor returns the ANSI prefix for a region, or "" for uncolored land.
func glyphColor(r Region) string {
	if r.Land {
		return ""
	}
	if r.Vegetation != VegetationNone {
		return ansiGreen
	}
	if r.Structure != StructureNone {
		return structureColors[r.Structure]
	}
	return ansiBlue
}

// RenderText renders the map as one line per grid row, every row terminated
// by a newline. With colorize set, each glyph is wrapped in its ANSI color.
func RenderText(m *Map, colorize bool) string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			r := m.regions[y*m.width+x]
			if colorize {
				if c := glyphColor(r); c != "" {
					b.WriteString(c)
					b.WriteRune(Glyph(r))
					b.WriteString(ansiReset)
					continue
				}
			}
			b.WriteRune(Glyph(r))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
