package core

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is matched by every error describing a malformed initial grid.
var ErrInvalidGrid = errors.New("invalid grid")

// InvalidGridError reports where an initial grid failed validation. Row and
// Col are -1 when the problem is not tied to a single position.
type InvalidGridError struct {
	Row    int
	Col    int
	Reason string
}

func (e *InvalidGridError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%v: %s", ErrInvalidGrid, e.Reason)
	case e.Col < 0:
		return fmt.Sprintf("%v: row %d: %s", ErrInvalidGrid, e.Row+1, e.Reason)
	default:
		return fmt.Sprintf("%v: row %d col %d: %s", ErrInvalidGrid, e.Row+1, e.Col+1, e.Reason)
	}
}

// Unwrap lets errors.Is match ErrInvalidGrid.
func (e *InvalidGridError) Unwrap() error { return ErrInvalidGrid }
