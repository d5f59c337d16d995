package topo

import "testing"

func sampleGrid(f NoiseField, w, h int) []float64 {
	out := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, f.Sample(x, y))
		}
	}
	return out
}

func TestNoiseFieldsDeterministic(t *testing.T) {
	fields := map[string]func(seed int64) NoiseField{
		"perlin":  func(seed int64) NoiseField { return NewPerlinField(seed, 0.12) },
		"simplex": func(seed int64) NoiseField { return NewSimplexField(seed, 0.12) },
	}

	for name, mk := range fields {
		a := sampleGrid(mk(42), 16, 16)
		b := sampleGrid(mk(42), 16, 16)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: sample %d differs between identically seeded fields", name, i)
			}
		}

		c := sampleGrid(mk(43), 16, 16)
		differs := false
		for i := range a {
			if a[i] != c[i] {
				differs = true
				break
			}
		}
		if !differs {
			t.Fatalf("%s: different seeds produced identical fields", name)
		}

		for i, v := range a {
			if v < noiseMin || v > noiseMax {
				t.Fatalf("%s: sample %d = %f outside [%f, %f]", name, i, v, noiseMin, noiseMax)
			}
		}
	}
}

func TestParseNoiseKind(t *testing.T) {
	if k, err := ParseNoiseKind("perlin"); err != nil || k != NoisePerlin {
		t.Fatalf("ParseNoiseKind(perlin) = %v, %v", k, err)
	}
	if k, err := ParseNoiseKind("simplex"); err != nil || k != NoiseSimplex {
		t.Fatalf("ParseNoiseKind(simplex) = %v, %v", k, err)
	}
	if _, err := ParseNoiseKind("value"); err == nil {
		t.Fatal("ParseNoiseKind must reject unknown backends")
	}
}
