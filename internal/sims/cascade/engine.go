// Package cascade implements a bounded grid of charge cells that discharge
// into their eight neighbors once their quantity exceeds a threshold, with
// every chain reaction resolved inside the tick that started it.
package cascade

import "cascade-ca/internal/core"

// Threshold is the quantity a cell must exceed to discharge.
const Threshold = 9

// TraceEvent describes a single discharge inside a tick.
type TraceEvent struct {
	Tick  int
	Order int
	Cell  core.Coord
}

// Engine advances a grid by whole ticks: charge every cell, resolve the
// discharge cascade through a worklist, then settle discharged cells to zero.
type Engine struct {
	grid *core.Grid
	tick int

	queue  []int
	queued []bool
	nbuf   []core.Coord

	trace func(TraceEvent)
}

// NewEngine returns an Engine that exclusively owns g.
func NewEngine(g *core.Grid) *Engine {
	return &Engine{
		grid:   g,
		queue:  make([]int, 0, g.TotalCells()),
		queued: make([]bool, g.TotalCells()),
		nbuf:   make([]core.Coord, 0, 8),
	}
}

// Grid exposes the engine's grid for read-only inspection.
func (e *Engine) Grid() *core.Grid { return e.grid }

// SetTrace installs fn to observe every discharge. A nil fn disables tracing.
func (e *Engine) SetTrace(fn func(TraceEvent)) { e.trace = fn }

// Advance runs one full tick and returns how many cells discharged.
func (e *Engine) Advance() int {
	g := e.grid
	size := g.Size()
	e.tick++
	e.queue = e.queue[:0]
	clear(e.queued)

	for r := 0; r < size.H; r++ {
		for c := 0; c < size.W; c++ {
			g.Increment(r, c)
			e.offer(r, c)
		}
	}

	discharges := 0
	for head := 0; head < len(e.queue); head++ {
		cell := g.Coord(e.queue[head])
		if g.Discharged(cell.Row, cell.Col) || g.Quantity(cell.Row, cell.Col) <= Threshold {
			continue
		}
		g.MarkDischarged(cell.Row, cell.Col)
		discharges++
		if e.trace != nil {
			e.trace(TraceEvent{Tick: e.tick, Order: discharges, Cell: cell})
		}

		// Discharged neighbors still take the increment; Settle zeroes them.
		e.nbuf = g.AppendNeighbors(e.nbuf[:0], cell.Row, cell.Col)
		for _, n := range e.nbuf {
			g.Increment(n.Row, n.Col)
			e.offer(n.Row, n.Col)
		}
	}

	g.Settle()
	return discharges
}

// offer enqueues (r, c) if it newly qualifies to discharge this tick.
func (e *Engine) offer(r, c int) {
	g := e.grid
	idx := g.Index(r, c)
	if e.queued[idx] || g.Discharged(r, c) || g.Quantity(r, c) <= Threshold {
		return
	}
	e.queued[idx] = true
	e.queue = append(e.queue, idx)
}
