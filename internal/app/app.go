//go:build ebiten

package app

import (
	"image/color"
	"time"

	"go.uber.org/zap"

	"cascade-ca/internal/config"
	"cascade-ca/internal/core"
	"cascade-ca/internal/render"
	"cascade-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a core simulation to the ebiten.Game interface. It pulls the
// sim's state every frame but only advances it when the pacer releases a tick.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.Pacer
	log     *zap.Logger

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg config.ViewerConfig, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		palette: render.QuantityPalette(),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, hudWidth),
		pacer:   core.NewPacer(cfg.TPS),
		log:     log,
		scale:   cfg.Scale,
		tps:     cfg.TPS,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.pacer.Reset()
	g.tickOnce = false
	g.log.Info("reset", zap.Int64("seed", seed))
}

// Update handles per-frame logic and advances the simulation.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setTPS(g.tps / 2)
	}

	g.overlay.Update()

	due := g.pacer.Due(time.Now())
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
	}
	g.hud.Update()
	return nil
}

func (g *Game) setTPS(tps int) {
	g.tps = min(max(tps, 1), 240)
	g.pacer.SetTPS(g.tps)
	g.log.Debug("tick rate changed", zap.Int("tps", g.tps))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
