//go:build ebiten

package app

import (
	"fmt"
	"time"

	"pondtopo/internal/core"
	"pondtopo/internal/fish"
	"pondtopo/internal/render"
	"pondtopo/internal/topo"
	"pondtopo/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// fishTickFrames is the autoplay divider: one fish tick every this many
// frames, so the population moves slower than the render loop.
const fishTickFrames = 30

// Game binds a generated pond map and the fish simulation to ebiten.
type Game struct {
	pond    *topo.Map
	cells   *core.ByteGrid
	painter *render.GridPainter
	sim     *fish.Simulation
	hud     *ui.HUD

	mapCfg   topo.Config
	pixel    int
	paused   bool
	tickOnce bool
	seed     int64
	frame    int
}

// New constructs a Game, generating the map eagerly.
func New(mapCfg topo.Config, sim *fish.Simulation, pixel int) *Game {
	g := &Game{mapCfg: mapCfg, sim: sim, pixel: pixel, seed: mapCfg.Seed}
	g.pond = topo.New(mapCfg)
	g.cells = g.pond.DisplayGrid()
	g.painter = render.NewGridPainter(mapCfg.Width, mapCfg.Height)
	g.hud = ui.NewHUD(sim)
	return g
}

// Reset regenerates the map and fish population with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.mapCfg.Seed = seed
	g.pond = topo.New(g.mapCfg)
	g.cells = g.pond.DisplayGrid()
	g.sim.Reset(seed)
	g.tickOnce = false
	g.frame = 0
}

// Update handles per-frame input and advances the fish simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.hud != nil {
		g.hud.Update()
	}

	g.frame++
	if (!g.paused && g.frame%fishTickFrames == 0) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	if g.hud != nil {
		g.hud.SetStatus(fmt.Sprintf("tick %d  population %d  seed %d", g.sim.Tick(), g.sim.PopulationCount(), g.seed))
	}
	return nil
}

// Draw renders the map and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cells.Cells(), topo.Palette(), g.pixel)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.mapCfg.Width * g.pixel, g.mapCfg.Height * g.pixel
}
