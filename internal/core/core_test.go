package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 100; i++ {
		if a.IntN(101) != b.IntN(101) {
			t.Fatalf("draw %d differs between identically seeded RNGs", i)
		}
	}

	c := NewRNG(8)
	d := NewRNG(9)
	same := true
	for i := 0; i < 100; i++ {
		if c.IntN(101) != d.IntN(101) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical draw sequences")
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.IntN(3); v < 0 || v > 2 {
			t.Fatalf("IntN(3) = %d", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %f", v)
		}
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
}

func TestByteGridIndexPanics(t *testing.T) {
	g := NewByteGrid(4, 3)
	if g.Index(3, 2) != 11 {
		t.Fatalf("Index(3,2) = %d, want 11", g.Index(3, 2))
	}
	g.Cells()[g.Index(1, 1)] = 9
	g.Clear()
	if g.Cells()[5] != 0 {
		t.Fatal("Clear must zero the grid")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Index must panic for out-of-range coordinates")
		}
	}()
	g.Index(4, 0)
}
