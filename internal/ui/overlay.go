//go:build ebiten

package ui

import (
	"image/color"

	"cascade-ca/internal/core"
	"cascade-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type atRestProvider interface {
	AtRest() []bool
}

// Overlay highlights the cells that discharged during the last tick.
type Overlay struct {
	sim     core.Sim
	scale   int
	show    bool
	painter *render.GridPainter
	col     color.RGBA
}

// NewOverlay constructs an overlay for sim. The highlight starts enabled.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:     sim,
		scale:   scale,
		show:    true,
		painter: render.NewGridPainter(size.W, size.H),
		col:     color.RGBA{R: 255, G: 170, B: 40, A: 110},
	}
}

// Update toggles the highlight with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(atRestProvider)
	if !ok {
		return
	}
	o.painter.BlitMask(screen, provider.AtRest(), o.col, max(o.scale, 1))
}
