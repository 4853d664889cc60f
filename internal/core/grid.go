package core

import "fmt"

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid stores integer cell quantities and per-tick discharge flags in
// row-major order. Dimensions are fixed at construction.
type Grid struct {
	w, h       int
	qty        []int
	discharged []bool
}

// NewGrid builds a grid from a rectangular matrix of non-negative quantities.
func NewGrid(initial [][]int) (*Grid, error) {
	if len(initial) == 0 {
		return nil, &InvalidGridError{Row: -1, Col: -1, Reason: "grid has no rows"}
	}
	w := len(initial[0])
	if w == 0 {
		return nil, &InvalidGridError{Row: 0, Col: -1, Reason: "row is empty"}
	}
	h := len(initial)
	g := &Grid{w: w, h: h, qty: make([]int, 0, w*h), discharged: make([]bool, w*h)}
	for r, row := range initial {
		if len(row) != w {
			return nil, &InvalidGridError{
				Row:    r,
				Col:    -1,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), w),
			}
		}
		for c, v := range row {
			if v < 0 {
				return nil, &InvalidGridError{Row: r, Col: c, Reason: fmt.Sprintf("negative quantity %d", v)}
			}
			g.qty = append(g.qty, v)
		}
	}
	return g, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// TotalCells returns width*height.
func (g *Grid) TotalCells() int { return g.w * g.h }

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.h && c >= 0 && c < g.w
}

// Index returns the linear slice index for (r, c). It panics when the
// coordinates fall outside the grid.
func (g *Grid) Index(r, c int) int {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", r, c, g.h, g.w))
	}
	return r*g.w + c
}

// Coord converts a linear index back into row and column.
func (g *Grid) Coord(i int) Coord {
	if i < 0 || i >= len(g.qty) {
		panic(fmt.Sprintf("core: index %d outside grid of %d cells", i, len(g.qty)))
	}
	return Coord{Row: i / g.w, Col: i % g.w}
}

// Quantity returns the current quantity of (r, c).
func (g *Grid) Quantity(r, c int) int { return g.qty[g.Index(r, c)] }

// Discharged reports whether (r, c) has discharged during the current tick.
func (g *Grid) Discharged(r, c int) bool { return g.discharged[g.Index(r, c)] }

// Increment adds one unit to (r, c).
func (g *Grid) Increment(r, c int) { g.qty[g.Index(r, c)]++ }

// MarkDischarged flags (r, c) as discharged for the current tick.
func (g *Grid) MarkDischarged(r, c int) { g.discharged[g.Index(r, c)] = true }

// Settle zeroes every discharged cell, clears all discharge flags and returns
// how many cells were settled.
func (g *Grid) Settle() int {
	n := 0
	for i, d := range g.discharged {
		if !d {
			continue
		}
		g.qty[i] = 0
		g.discharged[i] = false
		n++
	}
	return n
}

// Neighbors returns the in-bounds 8-directional neighbors of (r, c).
func (g *Grid) Neighbors(r, c int) []Coord {
	return g.AppendNeighbors(make([]Coord, 0, 8), r, c)
}

// AppendNeighbors appends the in-bounds neighbors of (r, c) to dst in
// row-major order of the surrounding 3x3 block, skipping the center.
func (g *Grid) AppendNeighbors(dst []Coord, r, c int) []Coord {
	g.Index(r, c)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if !g.InBounds(nr, nc) {
				continue
			}
			dst = append(dst, Coord{Row: nr, Col: nc})
		}
	}
	return dst
}

// Quantities returns a row-major copy of all cell quantities.
func (g *Grid) Quantities() []int {
	return append([]int(nil), g.qty...)
}

// Rows returns the quantities as a freshly allocated matrix.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.h)
	for r := range rows {
		rows[r] = append([]int(nil), g.qty[r*g.w:(r+1)*g.w]...)
	}
	return rows
}
