package mcmc

import (
	"math/rand/v2"

	"prolom/pkg/cipher"
)

// Source supplies the randomness a search consumes: uniform reals for
// acceptance draws and proposal branching, uniform integers for position
// selection. *rand.Rand from math/rand/v2 satisfies it, and tests substitute
// scripted fakes to force acceptance decisions.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntN returns a uniform draw in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a seeded Source. Equal seeds produce equal draw
// sequences, which makes whole runs reproducible.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// newEntropySource returns a Source seeded from the process entropy pool,
// for callers that did not ask for reproducibility.
func newEntropySource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandomKey returns a uniformly random permutation key over the alphabet,
// using a Fisher-Yates shuffle driven by src.
func RandomKey(a *cipher.Alphabet, src Source) *cipher.Key {
	b := []byte(a.Symbols())
	for i := len(b) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		b[i], b[j] = b[j], b[i]
	}
	k, err := cipher.NewKey(a, string(b))
	if err != nil {
		panic("mcmc: shuffled alphabet is not a permutation: " + err.Error())
	}
	return k
}
