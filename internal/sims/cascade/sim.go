package cascade

import (
	"fmt"
	"strconv"

	"cascade-ca/internal/core"
	pkgcore "cascade-ca/pkg/core"
)

// Sim adapts a Controller to the core.Sim contract used by the viewer.
type Sim struct {
	cfg     Config
	initial [][]int
	opts    []Option

	ctrl    *Controller
	display []uint8
}

// New builds a Sim from cfg. The starting grid comes from cfg.Initial, then
// cfg.Input, then a random board seeded by cfg.Seed.
func New(cfg Config, opts ...Option) (*Sim, error) {
	initial := cfg.Initial
	if initial == nil && cfg.Input != "" {
		rows, err := ParseFile(cfg.Input)
		if err != nil {
			return nil, err
		}
		initial = rows
	}
	if initial != nil {
		if _, err := core.NewGrid(initial); err != nil {
			return nil, err
		}
	} else {
		cfg.Width = max(cfg.Width, 1)
		cfg.Height = max(cfg.Height, 1)
	}

	s := &Sim{cfg: cfg, initial: initial, opts: opts}
	s.Reset(0)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "cascade" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.ctrl.Engine().Grid().Size() }

// Cells exposes the display buffer: quantities clamped to [0, Threshold].
func (s *Sim) Cells() []uint8 { return s.display }

// Controller exposes the controller driving this sim.
func (s *Sim) Controller() *Controller { return s.ctrl }

// Snapshot returns the controller's current snapshot.
func (s *Sim) Snapshot() Snapshot { return s.ctrl.Snapshot() }

// AtRest reports which cells discharged during the most recent tick.
func (s *Sim) AtRest() []bool { return s.ctrl.Snapshot().AtRest }

// Reset restarts from tick zero. A configured grid is restored as-is; a
// random board is regenerated from seed, or from the configured seed when
// seed is zero.
func (s *Sim) Reset(seed int64) {
	matrix := s.initial
	if matrix == nil {
		effective := seed
		if effective == 0 {
			effective = s.cfg.Seed
		}
		matrix = pkgcore.NewRNG(effective).DigitMatrix(s.cfg.Height, s.cfg.Width)
	}
	g, err := core.NewGrid(matrix)
	if err != nil {
		panic(fmt.Sprintf("cascade: reset produced invalid grid: %v", err))
	}
	s.ctrl = NewController(NewEngine(g), s.opts...)
	s.display = make([]uint8, g.TotalCells())
	s.refresh()
}

// Step advances the simulation by one tick.
func (s *Sim) Step() {
	s.ctrl.Step()
	s.refresh()
}

func (s *Sim) refresh() {
	for i, q := range s.ctrl.Engine().Grid().Quantities() {
		s.display[i] = uint8(min(q, Threshold))
	}
}

// Parameters reports the counters shown on the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	size := s.Size()
	syncValue := "-"
	if tick, ok := s.ctrl.FirstSynchronizedTick(); ok {
		syncValue = strconv.Itoa(tick)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Progress",
			Params: []core.Parameter{
				{Key: "tick", Label: "Tick", Type: core.ParamTypeInt, Value: strconv.Itoa(s.ctrl.Tick())},
				{Key: "last_discharges", Label: "Discharges", Type: core.ParamTypeInt, Value: strconv.Itoa(s.ctrl.LastDischarges())},
				{Key: "total_discharges", Label: "Total", Type: core.ParamTypeInt, Value: strconv.Itoa(s.ctrl.TotalDischarges())},
				{Key: "sync_tick", Label: "Synchronized", Type: core.ParamTypeInt, Value: syncValue},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeText, Value: fmt.Sprintf("%dx%d", size.W, size.H)},
				{Key: "threshold", Label: "Threshold", Type: core.ParamTypeInt, Value: strconv.Itoa(Threshold)},
			},
		},
	}}
}

func init() {
	core.Register("cascade", func(cfg map[string]string) (core.Sim, error) {
		s, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
