// Package motion models the site's decorative animations: the ambient particle
// field and the parallax hero. Everything here is deterministic given a Rand
// and a Clock, so browser behaviour can be reproduced and tested in Go.
package motion

import "math/rand/v2"

// Rand is the source of randomness used for sampling and jitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Seeded returns a deterministic Rand. Not safe for concurrent use.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Unseeded returns a Rand seeded from the runtime's random source.
// Not safe for concurrent use; create one per request.
func Unseeded() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
