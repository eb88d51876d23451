package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// One instance is owned by each Universe; every random decision the simulation
// makes flows through it, which is what keeps seeded replays byte-identical.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Byte returns a uniform random byte.
func (r *RNG) Byte() uint8 {
	return uint8(r.r.Uint32())
}

// Dir returns a uniform ternary direction: -1, 0 or +1.
func (r *RNG) Dir() int {
	return r.r.IntN(3) - 1
}

// Side returns -1 or +1 with equal probability.
func (r *RNG) Side() int {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// ByteIn returns a random byte in [lo, hi] inclusive.
func (r *RNG) ByteIn(lo, hi uint8) uint8 {
	if hi <= lo {
		return lo
	}
	return lo + uint8(r.r.IntN(int(hi-lo)+1))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
