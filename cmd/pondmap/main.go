package main

import (
	"flag"
	"fmt"
	"log"

	"pondtopo/internal/fish"
	"pondtopo/internal/topo"
)

func main() {
	seed := flag.Int64("seed", 42, "generation seed")
	width := flag.Int("width", 96, "grid width in cells")
	height := flag.Int("height", 64, "grid height in cells")
	scale := flag.Float64("scale", 0.12, "noise frequency per cell")
	noise := flag.String("noise", "perlin", "noise backend (perlin or simplex)")
	colorize := flag.Bool("color", false, "colorize output with ANSI escapes")
	ticks := flag.Int("ticks", 0, "fish population ticks to run after printing the map")
	flag.Parse()

	kind, err := topo.ParseNoiseKind(*noise)
	if err != nil {
		log.Fatal(err)
	}
	if *width <= 0 || *height <= 0 {
		log.Fatalf("grid dimensions must be positive, got %dx%d", *width, *height)
	}

	m := topo.New(topo.Config{Seed: *seed, Width: *width, Height: *height, Scale: *scale, Noise: kind})
	fmt.Print(topo.RenderText(m, *colorize))

	if *ticks > 0 {
		cfg := fish.DefaultConfig()
		cfg.Seed = *seed
		sim := fish.New(cfg)
		for i := 0; i < *ticks; i++ {
			sim.Step()
		}
		fmt.Printf("fish population after %d ticks: %d\n", *ticks, sim.PopulationCount())
		fmt.Printf("history: %v\n", sim.History())
	}
}
