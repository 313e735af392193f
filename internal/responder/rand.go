package responder

import (
	"math"
	"math/rand/v2"
)

// Rand is the randomness the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it, so tests can pass a seeded source.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand draws from the math/rand/v2 top-level functions, which are safe
// for concurrent use and carry no caller-visible seed.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

func pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// sample draws k distinct items, preserving draw order.
func sample[T any](r Rand, items []T, k int) []T {
	pool := append([]T(nil), items...)
	k = min(k, len(pool))
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := r.IntN(len(pool))
		out = append(out, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return out
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
