//go:build ebiten

package ui

import (
	"fmt"
	"strconv"

	"pondtopo/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD overlays a status line and a small parameter panel on the simulation
// view, routing keyboard adjustments to the target's parameter setters.
type HUD struct {
	controls    []core.ParameterControl
	values      core.ParameterValuesProvider
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	selected int
	visible  bool
	status   string
}

// NewHUD constructs a HUD for the provided target. Capabilities are detected
// through the core parameter interfaces; a target exposing none of them still
// gets the status line.
func NewHUD(target any) *HUD {
	h := &HUD{visible: true}
	if p, ok := target.(core.ParameterControlsProvider); ok {
		h.controls = p.ParameterControls()
	}
	if v, ok := target.(core.ParameterValuesProvider); ok {
		h.values = v
	}
	if s, ok := target.(core.IntParameterSetter); ok {
		h.intSetter = s
	}
	if s, ok := target.(core.FloatParameterSetter); ok {
		h.floatSetter = s
	}
	return h
}

// SetStatus replaces the status line text.
func (h *HUD) SetStatus(s string) {
	if h == nil {
		return
	}
	h.status = s
}

// Update handles HUD key bindings: Tab toggles the panel, Up/Down select a
// control, Left/Right step the selected value.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	if !h.visible || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		h.adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		h.adjust(1)
	}
}

func (h *HUD) adjust(direction float64) {
	ctrl := h.controls[h.selected]
	current, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	next := current + direction*ctrl.Step
	if ctrl.HasMin && next < ctrl.Min {
		next = ctrl.Min
	}
	if ctrl.HasMax && next > ctrl.Max {
		next = ctrl.Max
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(next))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, next)
		}
	}
}

func (h *HUD) currentValue(key string) (float64, bool) {
	if h.values == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(h.values.ParameterValue(key), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Draw paints the status line and, when visible, the parameter panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, h.status, 4, 4)
	if !h.visible || len(h.controls) == 0 {
		return
	}
	y := 20
	for i, ctrl := range h.controls {
		marker := "  "
		if i == h.selected {
			marker = "> "
		}
		value := "--"
		if h.values != nil {
			value = h.values.ParameterValue(ctrl.Key)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s%s: %s", marker, ctrl.Label, value), 4, y)
		y += 14
	}
	ebitenutil.DebugPrintAt(screen, "arrows adjust - tab hides - space pauses", 4, y+4)
}
