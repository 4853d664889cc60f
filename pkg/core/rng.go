package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Digit returns a random value in [0, 9].
func (r *RNG) Digit() int {
	return r.r.IntN(10)
}

// DigitMatrix returns a rows x cols matrix of random digits.
func (r *RNG) DigitMatrix(rows, cols int) [][]int {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
		for j := range m[i] {
			m[i][j] = r.Digit()
		}
	}
	return m
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
