//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pondtopo/internal/app"
	"pondtopo/internal/fish"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	mapCfg, err := cfg.MapConfig()
	if err != nil {
		log.Fatal(err)
	}
	if mapCfg.Width <= 0 || mapCfg.Height <= 0 {
		log.Fatalf("grid dimensions must be positive, got %dx%d", mapCfg.Width, mapCfg.Height)
	}

	fishCfg := fish.DefaultConfig()
	fishCfg.Seed = mapCfg.Seed
	sim := fish.New(fishCfg)

	game := app.New(mapCfg, sim, cfg.Pixel)

	ebiten.SetWindowTitle("pondtopo")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(mapCfg.Width*cfg.Pixel, mapCfg.Height*cfg.Pixel)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
