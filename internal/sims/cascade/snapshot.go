package cascade

import (
	"strconv"
	"strings"

	"cascade-ca/internal/core"
)

// Snapshot is a detached copy of the grid after some tick. Renderers pull it
// from the Controller; holding one never affects the simulation.
type Snapshot struct {
	Tick            int
	Size            core.Size
	Quantities      []int
	AtRest          []bool
	LastDischarges  int
	TotalDischarges int
}

// Rows returns the quantities as a matrix.
func (s Snapshot) Rows() [][]int {
	rows := make([][]int, s.Size.H)
	for r := range rows {
		rows[r] = append([]int(nil), s.Quantities[r*s.Size.W:(r+1)*s.Size.W]...)
	}
	return rows
}

// String renders the quantities one row per line. Values above 9 never
// appear at rest but are printed in full if present.
func (s Snapshot) String() string {
	var b strings.Builder
	for r := 0; r < s.Size.H; r++ {
		for c := 0; c < s.Size.W; c++ {
			b.WriteString(strconv.Itoa(s.Quantities[r*s.Size.W+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
