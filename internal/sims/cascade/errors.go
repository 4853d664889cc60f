package cascade

import (
	"errors"
	"fmt"

	"cascade-ca/internal/core"
)

// ErrInvalidGrid is re-exported so callers of this package need not import core.
var ErrInvalidGrid = core.ErrInvalidGrid

// InvalidGridError is the typed form of ErrInvalidGrid.
type InvalidGridError = core.InvalidGridError

// ErrNoSynchronization is returned when a bounded search runs out of ticks
// before every cell discharges in the same tick.
var ErrNoSynchronization = errors.New("no synchronized tick")

// NoSynchronizationError records the tick range a failed search covered.
type NoSynchronizationError struct {
	From int
	To   int
}

func (e *NoSynchronizationError) Error() string {
	return fmt.Sprintf("%v in ticks %d..%d", ErrNoSynchronization, e.From, e.To)
}

// Unwrap lets errors.Is match ErrNoSynchronization.
func (e *NoSynchronizationError) Unwrap() error { return ErrNoSynchronization }
