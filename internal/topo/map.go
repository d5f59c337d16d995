package topo

import (
	"fmt"

	"pondtopo/internal/core"
)

// Config controls map generation.
type Config struct {
	Seed   int64
	Width  int
	Height int
	Scale  float64
	Noise  NoiseKind
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Seed: 42, Width: 96, Height: 64, Scale: 0.12, Noise: NoisePerlin}
}

// Map owns the generated regions for one pond. Construction runs the full
// generation eagerly; the result is immutable afterwards.
type Map struct {
	width   int
	height  int
	scale   float64
	seed    int64
	regions []Region
}

// New generates a map from the configuration. The terrain field and the
// vegetation placement stream are seeded independently so either layer can be
// re-derived without perturbing the other.
func New(cfg Config) *Map {
	var field NoiseField
	switch cfg.Noise {
	case NoiseSimplex:
		field = NewSimplexField(cfg.Seed, cfg.Scale)
	case NoisePerlin, "":
		field = NewPerlinField(cfg.Seed, cfg.Scale)
	default:
		panic(fmt.Sprintf("topo: unknown noise backend %q", cfg.Noise))
	}
	return &Map{
		width:   cfg.Width,
		height:  cfg.Height,
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		regions: Generate(field, cfg.Width, cfg.Height, core.NewRNG(cfg.Seed)),
	}
}

// Size reports the grid dimensions.
func (m *Map) Size() core.Size { return core.Size{W: m.width, H: m.height} }

// Seed returns the generation seed.
func (m *Map) Seed() int64 { return m.seed }

// Scale returns the noise frequency per cell.
func (m *Map) Scale() float64 { return m.scale }

// At returns the region at (x, y). Out-of-range coordinates are an internal
// defect and panic with the offending pair.
func (m *Map) At(x, y int) Region {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("topo: region index (%d,%d) out of range for %dx%d", x, y, m.width, m.height))
	}
	return m.regions[y*m.width+x]
}

// Regions exposes the flat row-major region slice.
func (m *Map) Regions() []Region { return m.regions }

// Generate walks the grid in strict row-major order, classifying each cell
// and running the vegetation placement rule for water cells. The order is
// load-bearing: the adjacency rule consults only cells emitted earlier in the
// same pass (the up and left neighbors).
func Generate(field NoiseField, width, height int, placement core.Stream) []Region {
	regions := make([]Region, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sample := field.Sample(x, y)
			if isLand(sample) {
				regions = append(regions, Region{Land: true})
				continue
			}

			depth := depthFromSample(sample)
			band := bandFor(depth)

			candidate := vegetationKinds[placement.IntN(len(vegetationKinds))]
			adjacent := adjacentSameKind(regions, width, x, y, candidate)
			rate := band.Rate(candidate, adjacent)

			veg := VegetationNone
			roll := float64(placement.IntN(101)) / 100
			if rate > 0 && roll <= rate {
				veg = candidate
			}

			regions = append(regions, Region{
				Depth:      depth,
				Band:       band.Name,
				Bottom:     BottomHard,
				Vegetation: veg,
			})
		}
	}
	return regions
}

// adjacentSameKind reports whether a causally earlier neighbor already bears
// the candidate kind. The up neighbor is authoritative when it exists and is
// water; the left neighbor is consulted only when the up neighbor is absent
// or land. The top-left corner has no neighbors at all.
func adjacentSameKind(regions []Region, width, x, y int, kind Vegetation) bool {
	if y > 0 {
		up := regions[(y-1)*width+x]
		if !up.Land {
			return up.HasVegetation(kind)
		}
	}
	if x > 0 {
		left := regions[y*width+x-1]
		if !left.Land {
			return left.HasVegetation(kind)
		}
	}
	return false
}
