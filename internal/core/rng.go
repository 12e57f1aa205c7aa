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

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// FillBits sets each cell of the grid alive with probability density. Cells
// are visited in index order so the result only depends on the seed.
func (r *RNG) FillBits(g *BitGrid, density float64) {
	g.Clear()
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if r.Chance(density) {
				g.Set(row, col, true)
			}
		}
	}
}
