package core

import "time"

// maxCatchUp bounds how many ticks a single Due call may release after a stall.
const maxCatchUp = 4

// Pacer releases simulation ticks at a steady rate, independent of how often
// the caller polls it. The viewer uses it so frame rate and tick rate differ.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer releasing tps ticks per second. Non-positive
// rates fall back to 10 ticks per second.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate without dropping accumulated time.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	p.step = time.Second / time.Duration(tps)
}

// Step reports the interval between released ticks.
func (p *Pacer) Step() time.Duration { return p.step }

// Due reports how many ticks have become due since the previous call. The
// first call only starts the clock.
func (p *Pacer) Due(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	if now.After(p.last) {
		p.accumulator += now.Sub(p.last)
	}
	p.last = now
	n := 0
	for p.accumulator >= p.step && n < maxCatchUp {
		p.accumulator -= p.step
		n++
	}
	if n == maxCatchUp {
		p.accumulator = 0
	}
	return n
}

// Reset discards accumulated time and restarts the clock on the next Due.
func (p *Pacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
