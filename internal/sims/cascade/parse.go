package cascade

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cascade-ca/internal/core"
)

// Parse reads a block of decimal digits, one grid row per line. Blank lines
// are tolerated only at the end of the input.
func Parse(r io.Reader) ([][]int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &InvalidGridError{Row: -1, Col: -1, Reason: "input is empty"}
	}

	width := len(lines[0])
	rows := make([][]int, len(lines))
	for r, line := range lines {
		if len(line) != width {
			return nil, &InvalidGridError{
				Row:    r,
				Col:    -1,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(line), width),
			}
		}
		row := make([]int, width)
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, &InvalidGridError{Row: r, Col: c, Reason: fmt.Sprintf("%q is not a digit", ch)}
			}
			row[c] = int(ch - '0')
		}
		rows[r] = row
	}
	return rows, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([][]int, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses the grid stored at path.
func ParseFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Load parses r and builds a grid from it.
func Load(r io.Reader) (*core.Grid, error) {
	rows, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return core.NewGrid(rows)
}

// NewControllerFromString parses s and wires a Grid, Engine and Controller.
func NewControllerFromString(s string, opts ...Option) (*Controller, error) {
	g, err := Load(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return NewController(NewEngine(g), opts...), nil
}
