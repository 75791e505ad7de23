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

// Float32 returns a random float32 in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// AddNoise perturbs every cell of grid by an independent random value in
// [0, amplitude).
func (r *RNG) AddNoise(grid *Grid, amplitude float32) {
	values := grid.Values()
	for i := range values {
		values[i] += r.r.Float32() * amplitude
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
