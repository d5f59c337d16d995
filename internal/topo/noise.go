package topo

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseField produces a coherent-noise sample in [-1, 1] for integer grid
// coordinates. Implementations must be pure functions of their seed and the
// scaled coordinates: identical inputs yield bit-identical samples.
type NoiseField interface {
	Sample(x, y int) float64
}

// NoiseKind selects the noise backend used for terrain shape.
type NoiseKind string

const (
	NoisePerlin  NoiseKind = "perlin"
	NoiseSimplex NoiseKind = "simplex"
)

// ParseNoiseKind validates a backend name from flags or config.
func ParseNoiseKind(s string) (NoiseKind, error) {
	switch NoiseKind(s) {
	case NoisePerlin, NoiseSimplex:
		return NoiseKind(s), nil
	}
	return "", fmt.Errorf("topo: unknown noise backend %q (want perlin or simplex)", s)
}

const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

type perlinField struct {
	p     *perlin.Perlin
	scale float64
}

// NewPerlinField returns the default Perlin-backed noise field.
func NewPerlinField(seed int64, scale float64) NoiseField {
	return &perlinField{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed), scale: scale}
}

func (f *perlinField) Sample(x, y int) float64 {
	return clampUnit(f.p.Noise2D(float64(x)*f.scale, float64(y)*f.scale))
}

type simplexField struct {
	n     opensimplex.Noise
	scale float64
}

// NewSimplexField returns an OpenSimplex-backed noise field.
func NewSimplexField(seed int64, scale float64) NoiseField {
	return &simplexField{n: opensimplex.New(seed), scale: scale}
}

func (f *simplexField) Sample(x, y int) float64 {
	return clampUnit(f.n.Eval2(float64(x)*f.scale, float64(y)*f.scale))
}

// clampUnit keeps samples inside the classifier's noise domain. Backends stay
// close to [-1, 1] but do not guarantee the bounds exactly.
func clampUnit(v float64) float64 {
	if v < noiseMin {
		return noiseMin
	}
	if v > noiseMax {
		return noiseMax
	}
	return v
}
