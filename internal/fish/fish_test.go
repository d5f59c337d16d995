package fish

import (
	"slices"
	"testing"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99

	a := New(cfg)
	b := New(cfg)
	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.History(), b.History()) {
		t.Fatal("identically seeded simulations must produce identical histories")
	}

	first := append([]int(nil), a.History()...)
	a.Reset(0)
	if a.Tick() != 0 || a.PopulationCount() != cfg.InitialCount {
		t.Fatalf("Reset left tick=%d population=%d", a.Tick(), a.PopulationCount())
	}
	for i := 0; i < 20; i++ {
		a.Step()
	}
	if !slices.Equal(first, a.History()) {
		t.Fatal("Reset with the config seed must replay the same history")
	}

	a.Reset(777)
	for i := 0; i < 20; i++ {
		a.Step()
	}
	if slices.Equal(first, a.History()) {
		t.Fatal("a different seed should produce a different history")
	}
}

func TestMaxAgeKillsWithoutDeathDraw(t *testing.T) {
	cfg := Config{InitialCount: 3, Seed: 1, Params: Params{DeathRate: 0, MaxAge: 10, SpawnThreshold: 0, SpawnCount: 5}}
	s := New(cfg)

	for i := 0; i < 10; i++ {
		s.Step()
	}
	if got := s.PopulationCount(); got != 3 {
		t.Fatalf("population %d after 10 ticks, want 3 (max age not yet exceeded)", got)
	}
	s.Step()
	if got := s.PopulationCount(); got != 0 {
		t.Fatalf("population %d after 11 ticks, want 0", got)
	}
	if n := len(s.History()); n != 12 {
		t.Fatalf("history has %d entries, want 12", n)
	}
}

func TestSpawnBelowThreshold(t *testing.T) {
	cfg := Config{InitialCount: 0, Seed: 1, Params: Params{DeathRate: 0, MaxAge: 10, SpawnThreshold: 10, SpawnCount: 5}}
	s := New(cfg)

	s.Step()
	s.Step()
	s.Step()
	if !slices.Equal(s.History(), []int{0, 5, 10, 10}) {
		t.Fatalf("history = %v, want [0 5 10 10]", s.History())
	}

	ids := map[int]bool{}
	for _, f := range s.Alive() {
		if ids[f.ID] {
			t.Fatalf("duplicate fish id %d", f.ID)
		}
		ids[f.ID] = true
	}
}

func TestParameterSettersClamp(t *testing.T) {
	s := New(DefaultConfig())

	if !s.SetFloatParameter("death_rate", 5) {
		t.Fatal("death_rate must be adjustable")
	}
	if got := s.Params().DeathRate; got != 0.9 {
		t.Fatalf("death rate = %f, want clamp to 0.9", got)
	}
	if !s.SetIntParameter("spawn_count", 0) {
		t.Fatal("spawn_count must be adjustable")
	}
	if got := s.Params().SpawnCount; got != 1 {
		t.Fatalf("spawn count = %d, want clamp to 1", got)
	}
	if s.SetIntParameter("unknown", 3) || s.SetFloatParameter("unknown", 3) {
		t.Fatal("unknown parameter keys must be rejected")
	}
	if s.ParameterValue("death_rate") != "0.90" {
		t.Fatalf("death_rate renders as %q", s.ParameterValue("death_rate"))
	}
	if len(s.ParameterControls()) == 0 {
		t.Fatal("simulation must expose HUD controls")
	}
}
