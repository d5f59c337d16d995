package topo

import (
	"math"
	"testing"
)

func TestBandTableCoversDepthDomain(t *testing.T) {
	// Every representable depth in [DepthMin, DepthMax] must resolve.
	for i := 0; i <= 1500; i++ {
		d := float64(i) * 0.01
		b := bandFor(d)
		if d < b.Min || d > b.Max {
			t.Fatalf("depth %f resolved to band %s [%f, %f]", d, b.Name, b.Min, b.Max)
		}
	}
}

func TestBandTableContiguous(t *testing.T) {
	if depthBands[0].Min != DepthMin {
		t.Fatalf("first band starts at %f, want %f", depthBands[0].Min, DepthMin)
	}
	if depthBands[len(depthBands)-1].Max != DepthMax {
		t.Fatalf("last band ends at %f, want %f", depthBands[len(depthBands)-1].Max, DepthMax)
	}
	for i := 1; i < len(depthBands); i++ {
		if depthBands[i].Min != depthBands[i-1].Max {
			t.Fatalf("gap between band %s and %s", depthBands[i-1].Name, depthBands[i].Name)
		}
	}
}

func TestBandLookupSharedEdgesResolveToEarlierBand(t *testing.T) {
	cases := []struct {
		depth float64
		want  BandName
	}{
		{0, BandSuperShallow},
		{5, BandSuperShallow},
		{7, BandShallow},
		{10, BandMidDepth},
		{15, BandDeep},
	}
	for _, tc := range cases {
		if got := bandFor(tc.depth).Name; got != tc.want {
			t.Fatalf("depth %f resolved to %s, want %s", tc.depth, got, tc.want)
		}
	}
}

func TestBandLookupPanicsOutsideDomain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("bandFor must panic for depths outside the table")
		}
	}()
	bandFor(DepthMax + 1)
}

func TestRatesWithinUnitInterval(t *testing.T) {
	for i := range depthBands {
		b := &depthBands[i]
		for _, kind := range vegetationKinds {
			r := b.Rates[kind]
			if r.Base < 0 || r.Base > 1 || r.Adjacency < 0 || r.Adjacency > 1 {
				t.Fatalf("band %s kind %d rates out of [0,1]: %+v", b.Name, kind, r)
			}
		}
	}
}

func TestDepthRemapEndpoints(t *testing.T) {
	if got := depthFromSample(LandThreshold); math.Abs(got-DepthMin) > 1e-12 {
		t.Fatalf("sample at land threshold maps to depth %f, want %f", got, DepthMin)
	}
	if got := depthFromSample(noiseMax); math.Abs(got-DepthMax) > 1e-12 {
		t.Fatalf("sample at noise max maps to depth %f, want %f", got, DepthMax)
	}
	if !isLand(LandThreshold - 0.0001) {
		t.Fatal("samples below the land threshold must classify as land")
	}
	if isLand(LandThreshold) {
		t.Fatal("the land threshold itself classifies as water")
	}
}
