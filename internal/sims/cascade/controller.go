package cascade

import "go.uber.org/zap"

// Controller drives an Engine tick by tick, accumulating discharge totals and
// remembering the first tick in which every cell discharged.
type Controller struct {
	engine *Engine
	log    *zap.Logger

	tick      int
	total     int
	last      int
	syncTick  int
	hasSynced bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes controller logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController wraps e. The controller becomes the only caller of e.Advance.
func NewController(e *Engine, opts ...Option) *Controller {
	c := &Controller{engine: e, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine returns the wrapped engine.
func (c *Controller) Engine() *Engine { return c.engine }

// Tick returns how many ticks have run so far.
func (c *Controller) Tick() int { return c.tick }

// TotalDischarges returns the cumulative discharge count over all ticks.
func (c *Controller) TotalDischarges() int { return c.total }

// LastDischarges returns the discharge count of the most recent tick.
func (c *Controller) LastDischarges() int { return c.last }

// FirstSynchronizedTick returns the 1-based index of the first tick in which
// every cell discharged, if one has been observed.
func (c *Controller) FirstSynchronizedTick() (int, bool) { return c.syncTick, c.hasSynced }

// Step advances one tick and returns its discharge count.
func (c *Controller) Step() int {
	n := c.engine.Advance()
	c.tick++
	c.total += n
	c.last = n
	if !c.hasSynced && n == c.engine.Grid().TotalCells() {
		c.hasSynced = true
		c.syncTick = c.tick
		c.log.Debug("synchronized discharge", zap.Int("tick", c.tick), zap.Int("cells", n))
	}
	return n
}

// Run advances ticks times and returns the cumulative discharge count,
// including ticks run by earlier calls.
func (c *Controller) Run(ticks int) int {
	for i := 0; i < ticks; i++ {
		c.Step()
	}
	c.log.Info("run complete",
		zap.Int("ticks", max(ticks, 0)),
		zap.Int("tick", c.tick),
		zap.Int("total_discharges", c.total),
	)
	return c.total
}

// FindSynchronizedTick returns the first tick in which every cell discharged.
// If none has been seen yet it keeps stepping from the current tick. A
// positive maxTicks bounds the number of additional ticks; when the bound is
// hit the returned error wraps ErrNoSynchronization. A non-positive maxTicks
// searches without limit.
func (c *Controller) FindSynchronizedTick(maxTicks int) (int, error) {
	if c.hasSynced {
		return c.syncTick, nil
	}
	from := c.tick + 1
	for n := 0; maxTicks <= 0 || n < maxTicks; n++ {
		c.Step()
		if c.hasSynced {
			return c.syncTick, nil
		}
	}
	err := &NoSynchronizationError{From: from, To: c.tick}
	c.log.Warn("synchronization search exhausted",
		zap.Int("from", err.From),
		zap.Int("to", err.To),
	)
	return 0, err
}

// Snapshot returns a read-only copy of the current grid state.
func (c *Controller) Snapshot() Snapshot {
	g := c.engine.Grid()
	qty := g.Quantities()
	atRest := make([]bool, len(qty))
	if c.tick > 0 {
		// Charging lifts every cell to at least 1, so zero means it discharged.
		for i, q := range qty {
			atRest[i] = q == 0
		}
	}
	return Snapshot{
		Tick:            c.tick,
		Size:            g.Size(),
		Quantities:      qty,
		AtRest:          atRest,
		LastDischarges:  c.last,
		TotalDischarges: c.total,
	}
}
