package ui

import (
	"fmt"
	"strings"

	"cascade-ca/internal/core"
)

// hudLines lays out a parameter snapshot as text lines, one heading per group.
func hudLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "", strings.ToUpper(g.Name))
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%-13s %s", p.Label, p.Value))
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Simulation"
	}
	return sim.Name()
}
