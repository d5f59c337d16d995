package topo

import "fmt"

// Depth domain and noise classification constants. Samples in the lower
// quarter of the noise range are land; the rest remaps linearly onto
// [DepthMin, DepthMax].
const (
	DepthMin = 0.0
	DepthMax = 15.0

	noiseMin = -1.0
	noiseMax = 1.0

	// LandThreshold is the noise value below which a cell is land.
	LandThreshold = noiseMin + 0.5
)

// BandName identifies one of the fixed depth bands.
type BandName uint8

const (
	BandSuperShallow BandName = iota
	BandShallow
	BandMidDepth
	BandDeep
)

// String returns the band identifier.
func (n BandName) String() string {
	switch n {
	case BandSuperShallow:
		return "super-shallow"
	case BandShallow:
		return "shallow"
	case BandMidDepth:
		return "mid-depth"
	case BandDeep:
		return "deep"
	}
	return fmt.Sprintf("band(%d)", uint8(n))
}

// VegetationRates pairs the base placement rate with the boosted rate applied
// when a causally earlier neighbor already bears the same kind.
type VegetationRates struct {
	Base      float64
	Adjacency float64
}

// DepthBand is one contiguous sub-range of the depth domain. Rates is indexed
// by Vegetation; the VegetationNone slot stays zero.
type DepthBand struct {
	Min   float64
	Max   float64
	Name  BandName
	Rates [4]VegetationRates
}

// Rate returns the placement rate for the kind, boosted if adjacent.
func (b *DepthBand) Rate(v Vegetation, adjacent bool) float64 {
	r := b.Rates[v]
	if adjacent {
		return r.Adjacency
	}
	return r.Base
}

// depthBands partitions [DepthMin, DepthMax]. Bounds are inclusive on both
// ends; shared edges resolve to the earlier band via first-match lookup.
var depthBands = [...]DepthBand{
	{
		Min:  DepthMin,
		Max:  5.0,
		Name: BandSuperShallow,
		Rates: [4]VegetationRates{
			VegetationGrass: {Base: 0.1, Adjacency: 0.45},
			VegetationReeds: {Base: 0.2, Adjacency: 0.75},
			VegetationMats:  {Base: 0.1, Adjacency: 0.75},
		},
	},
	{
		Min:  5.0,
		Max:  7.0,
		Name: BandShallow,
		Rates: [4]VegetationRates{
			VegetationGrass: {Base: 0.2, Adjacency: 0.65},
			VegetationReeds: {Base: 0.2, Adjacency: 0.4},
			VegetationMats:  {Base: 0.2, Adjacency: 0.75},
		},
	},
	{
		Min:  7.0,
		Max:  10.0,
		Name: BandMidDepth,
		Rates: [4]VegetationRates{
			VegetationGrass: {Base: 0.12, Adjacency: 0.45},
			VegetationReeds: {Base: 0, Adjacency: 0},
			VegetationMats:  {Base: 0.12, Adjacency: 0.45},
		},
	},
	{
		Min:  10.0,
		Max:  DepthMax,
		Name: BandDeep,
		Rates: [4]VegetationRates{
			VegetationGrass: {Base: 0.05, Adjacency: 0.20},
			VegetationReeds: {Base: 0, Adjacency: 0},
			VegetationMats:  {Base: 0.05, Adjacency: 0.20},
		},
	},
}

// isLand classifies a raw noise sample.
func isLand(sample float64) bool { return sample < LandThreshold }

// depthFromSample remaps the water sub-range of the noise domain onto the
// depth domain.
func depthFromSample(sample float64) float64 {
	return (sample-LandThreshold)/(noiseMax-LandThreshold)*(DepthMax-DepthMin) + DepthMin
}

// bandFor resolves a depth to its owning band. A miss means the table no
// longer covers the depth domain, which is a defect, not a runtime error.
func bandFor(depth float64) *DepthBand {
	for i := range depthBands {
		b := &depthBands[i]
		if depth >= b.Min && depth <= b.Max {
			return b
		}
	}
	panic(fmt.Sprintf("topo: depth %v matches no band in [%v, %v]", depth, DepthMin, DepthMax))
}
