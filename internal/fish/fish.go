package fish

import (
	"fmt"
	"strconv"

	"pondtopo/internal/core"
)

// Fish is a single tracked individual.
type Fish struct {
	ID    int
	Age   int
	Alive bool
}

// Params holds the tunable rates for the population model.
type Params struct {
	DeathRate      float64
	MaxAge         int
	SpawnThreshold int
	SpawnCount     int
}

// Config controls the fish simulation.
type Config struct {
	InitialCount int
	Seed         int64
	Params       Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		InitialCount: 20,
		Seed:         42,
		Params: Params{
			DeathRate:      0.1,
			MaxAge:         10,
			SpawnThreshold: 10,
			SpawnCount:     5,
		},
	}
}

// Simulation steps a fish population on its own tick, independently seeded
// from the map generator.
type Simulation struct {
	cfg     Config
	fish    []Fish
	nextID  int
	rng     *core.RNG
	tick    int
	history []int
}

// New constructs a simulation and builds the initial population.
func New(cfg Config) *Simulation {
	s := &Simulation{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Reset rebuilds the initial population deterministically. Seed 0 falls back
// to the configured seed.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = core.NewRNG(seed)
	s.fish = s.fish[:0]
	for i := 0; i < s.cfg.InitialCount; i++ {
		s.fish = append(s.fish, Fish{ID: i, Alive: true})
	}
	s.nextID = s.cfg.InitialCount
	s.tick = 0
	s.history = append(s.history[:0], s.PopulationCount())
}

// Step advances one tick: every live fish ages and may die, then the
// population respawns if it fell below the spawn threshold.
func (s *Simulation) Step() {
	for i := range s.fish {
		f := &s.fish[i]
		if !f.Alive {
			continue
		}
		f.Age++
		// The death draw happens before the age check so the stream advances
		// once per live fish regardless of outcome.
		died := s.rng.Float64() < s.cfg.Params.DeathRate
		if died || f.Age > s.cfg.Params.MaxAge {
			f.Alive = false
		}
	}

	if s.PopulationCount() < s.cfg.Params.SpawnThreshold {
		s.spawn(s.cfg.Params.SpawnCount)
	}
	s.tick++
	s.history = append(s.history, s.PopulationCount())
}

func (s *Simulation) spawn(count int) {
	for i := 0; i < count; i++ {
		s.fish = append(s.fish, Fish{ID: s.nextID, Alive: true})
		s.nextID++
	}
}

// Alive returns the live fish.
func (s *Simulation) Alive() []Fish {
	out := make([]Fish, 0, len(s.fish))
	for _, f := range s.fish {
		if f.Alive {
			out = append(out, f)
		}
	}
	return out
}

// PopulationCount returns the number of live fish.
func (s *Simulation) PopulationCount() int {
	n := 0
	for _, f := range s.fish {
		if f.Alive {
			n++
		}
	}
	return n
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() int { return s.tick }

// History returns the live population per tick; index 0 is the initial count.
func (s *Simulation) History() []int { return s.history }

// Params returns the current tunables.
func (s *Simulation) Params() Params { return s.cfg.Params }

// ParameterControls exposes the HUD-adjustable tunables.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "death_rate", Label: "Death rate", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 0.9, HasMin: true, HasMax: true},
		{Key: "spawn_threshold", Label: "Spawn threshold", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 50, HasMin: true, HasMax: true},
		{Key: "spawn_count", Label: "Spawn count", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 20, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable, clamping to its bounds.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "death_rate":
		s.cfg.Params.DeathRate = clampFloat(value, 0.01, 0.9)
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable, clamping to its bounds.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "spawn_threshold":
		s.cfg.Params.SpawnThreshold = clampInt(value, 1, 50)
		return true
	case "spawn_count":
		s.cfg.Params.SpawnCount = clampInt(value, 1, 20)
		return true
	}
	return false
}

// ParameterValue formats the current value of a control for display.
func (s *Simulation) ParameterValue(key string) string {
	switch key {
	case "death_rate":
		return fmt.Sprintf("%.2f", s.cfg.Params.DeathRate)
	case "spawn_threshold":
		return strconv.Itoa(s.cfg.Params.SpawnThreshold)
	case "spawn_count":
		return strconv.Itoa(s.cfg.Params.SpawnCount)
	}
	return "--"
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
