package topo

// Vegetation enumerates the aquatic vegetation kinds.
type Vegetation uint8

const (
	VegetationNone Vegetation = iota
	VegetationGrass
	VegetationReeds
	VegetationMats
)

// vegetationKinds lists the candidate kinds the placement pass draws from.
var vegetationKinds = [...]Vegetation{VegetationGrass, VegetationReeds, VegetationMats}

// Structure enumerates bottom structure kinds. Generation never places one
// yet; the kinds exist so maps can carry them once placement rules land.
type Structure uint8

const (
	StructureNone Structure = iota
	StructureChunkRock
	StructureBoulder
	StructureTimber
	StructureBrush
)

// Bottom enumerates bottom compositions.
type Bottom uint8

const (
	BottomMud Bottom = iota
	BottomHard
	BottomGravel
)

// Region is a single generated cell. Land regions carry no further state;
// water regions record their depth, resolved band, bottom composition and any
// vegetation or structure. Regions are written once during generation and
// never mutated afterwards.
type Region struct {
	Land       bool
	Depth      float64
	Band       BandName
	Bottom     Bottom
	Vegetation Vegetation
	Structure  Structure
}

// HasVegetation reports whether the region is water bearing the given kind.
func (r Region) HasVegetation(v Vegetation) bool {
	return !r.Land && v != VegetationNone && r.Vegetation == v
}
