package yaduha

import (
	"iter"
	"math/rand/v2"
)

// IntN draws from [0, n) using r, or the global source when r is nil.
func IntN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

// Coin returns true with probability 1/2.
func Coin(r *rand.Rand) bool {
	return IntN(r, 2) == 0
}

// Pick returns a uniformly chosen element of items, which must not be empty.
func Pick[E any](r *rand.Rand, items []E) E {
	return items[IntN(r, len(items))]
}

// Repeat yields the results of n calls to gen. The sequence is finite and
// single-use in the sense that every iteration draws new values.
func Repeat[E any](n int, gen func() E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < n; i++ {
			if !yield(gen()) {
				return
			}
		}
	}
}
