package app

import (
	"flag"

	"pondtopo/internal/topo"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Seed   int64
	Width  int
	Height int
	Scale  float64
	Noise  string

	Pixel int
	TPS   int
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, Width: 96, Height: 64, Scale: 0.12, Noise: "perlin", Pixel: 8, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "noise frequency per cell")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise backend (perlin or simplex)")
	fs.IntVar(&c.Pixel, "pixel", c.Pixel, "screen pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// MapConfig converts the flag values into a map generation config.
func (c *Config) MapConfig() (topo.Config, error) {
	kind, err := topo.ParseNoiseKind(c.Noise)
	if err != nil {
		return topo.Config{}, err
	}
	return topo.Config{Seed: c.Seed, Width: c.Width, Height: c.Height, Scale: c.Scale, Noise: kind}, nil
}
