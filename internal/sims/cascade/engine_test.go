package cascade

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"cascade-ca/internal/core"
	pkgcore "cascade-ca/pkg/core"
)

const ringGrid = `11111
19991
19191
19991
11111
`

const benchmarkGrid = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func mustGrid(t *testing.T, s string) *core.Grid {
	t.Helper()
	rows, err := ParseString(s)
	require.NoError(t, err)
	g, err := core.NewGrid(rows)
	require.NoError(t, err)
	return g
}

func mustRows(t *testing.T, s string) [][]int {
	t.Helper()
	rows, err := ParseString(s)
	require.NoError(t, err)
	return rows
}

func TestAdvanceRingScenario(t *testing.T) {
	g := mustGrid(t, ringGrid)
	e := NewEngine(g)

	require.Equal(t, 9, e.Advance())
	want := mustRows(t, "34543\n40004\n50005\n40004\n34543\n")
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Fatalf("after tick 1 (-want +got):\n%s", diff)
	}

	require.Zero(t, e.Advance())
	want = mustRows(t, "45654\n51115\n61116\n51115\n45654\n")
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Fatalf("after tick 2 (-want +got):\n%s", diff)
	}
}

func TestAdvanceBenchmarkFirstTicks(t *testing.T) {
	g := mustGrid(t, benchmarkGrid)
	e := NewEngine(g)

	require.Zero(t, e.Advance())
	want := mustRows(t, `6594254334
3856965822
6375667284
7252447257
7468496589
5278635756
3287952832
7993992245
5957959665
6394862637
`)
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Fatalf("after tick 1 (-want +got):\n%s", diff)
	}

	require.Equal(t, 35, e.Advance())
	want = mustRows(t, `8807476555
5089087054
8597889608
8485769600
8700908800
6600088989
6800005943
0000007456
9000000876
8700006848
`)
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Fatalf("after tick 2 (-want +got):\n%s", diff)
	}
}

func TestAdvanceQuietCellCountsUp(t *testing.T) {
	g := mustGrid(t, "0\n")
	e := NewEngine(g)

	for tick := 1; tick <= 9; tick++ {
		require.Zero(t, e.Advance(), "tick %d", tick)
		require.Equal(t, tick, g.Quantity(0, 0))
	}
	require.Equal(t, 1, e.Advance())
	require.Zero(t, g.Quantity(0, 0))
}

func TestAdvanceDischargesEachCellOnce(t *testing.T) {
	g := mustGrid(t, "99\n99\n")
	e := NewEngine(g)

	seen := map[core.Coord]int{}
	e.SetTrace(func(ev TraceEvent) { seen[ev.Cell]++ })

	require.Equal(t, 4, e.Advance())
	require.Len(t, seen, 4)
	for cell, n := range seen {
		require.Equal(t, 1, n, "cell %v discharged %d times", cell, n)
	}
	require.Equal(t, []int{0, 0, 0, 0}, g.Quantities())
}

func TestAdvanceIncrementsDischargedNeighbors(t *testing.T) {
	g := mustGrid(t, "999\n")
	e := NewEngine(g)

	var events []TraceEvent
	var leftAtLast int
	e.SetTrace(func(ev TraceEvent) {
		events = append(events, ev)
		if ev.Order == 3 {
			leftAtLast = g.Quantity(0, 0)
		}
	})

	require.Equal(t, 3, e.Advance())
	want := []TraceEvent{
		{Tick: 1, Order: 1, Cell: core.Coord{Row: 0, Col: 0}},
		{Tick: 1, Order: 2, Cell: core.Coord{Row: 0, Col: 1}},
		{Tick: 1, Order: 3, Cell: core.Coord{Row: 0, Col: 2}},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("trace mismatch (-want +got):\n%s", diff)
	}
	// (0,0) discharged at 10 and then took one more unit from (0,1).
	require.Equal(t, 11, leftAtLast)
	require.Equal(t, []int{0, 0, 0}, g.Quantities())
}

func TestAdvanceChainAcrossGrid(t *testing.T) {
	// A single overflow at one end pushes the whole row over the threshold.
	g := mustGrid(t, "98888\n")
	e := NewEngine(g)

	require.Equal(t, 5, e.Advance())
	require.Equal(t, []int{0, 0, 0, 0, 0}, g.Quantities())
}

func TestAdvanceRestInvariants(t *testing.T) {
	rng := pkgcore.NewRNG(2021)
	for trial := 0; trial < 5; trial++ {
		g, err := core.NewGrid(rng.DigitMatrix(7+trial, 9))
		require.NoError(t, err)
		e := NewEngine(g)
		total := g.TotalCells()
		size := g.Size()

		for tick := 1; tick <= 150; tick++ {
			n := e.Advance()
			require.GreaterOrEqual(t, n, 0)
			require.LessOrEqual(t, n, total)

			zeros := 0
			for r := 0; r < size.H; r++ {
				for c := 0; c < size.W; c++ {
					q := g.Quantity(r, c)
					require.LessOrEqual(t, q, Threshold, "trial %d tick %d cell (%d,%d)", trial, tick, r, c)
					require.False(t, g.Discharged(r, c), "trial %d tick %d cell (%d,%d)", trial, tick, r, c)
					if q == 0 {
						zeros++
					}
				}
			}
			require.Equal(t, n, zeros, "discharge count should match settled cells")
		}
	}
}
