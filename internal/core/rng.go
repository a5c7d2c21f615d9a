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

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n int) uint8 {
	if n <= 0 {
		return 0
	}
	return uint8(r.r.IntN(n))
}

// FillStates fills the buffer with states in [0, n). Values of n above 256
// are treated as 256.
func FillStates(r *rand.Rand, buf []uint8, n int) {
	if n <= 1 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	if n > 256 {
		n = 256
	}
	for i := range buf {
		buf[i] = uint8(r.IntN(n))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
