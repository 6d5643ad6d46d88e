package mcmc_test

import (
	"testing"

	"prolom/pkg/cipher"
	"prolom/pkg/mcmc"
)

func TestNewSource_Reproducible(t *testing.T) {
	a, b := mcmc.NewSource(42), mcmc.NewSource(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v for equal seeds", i, x, y)
		}
		if x, y := a.IntN(27), b.IntN(27); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
}

func TestRandomKey_IsPermutation(t *testing.T) {
	a := cipher.Standard()
	k := mcmc.RandomKey(a, mcmc.NewSource(7))
	if _, err := cipher.NewKey(a, k.String()); err != nil {
		t.Fatalf("RandomKey produced %q: %v", k.String(), err)
	}
}

func TestRandomKey_SeedsDiffer(t *testing.T) {
	a := cipher.Standard()
	k1 := mcmc.RandomKey(a, mcmc.NewSource(1))
	k2 := mcmc.RandomKey(a, mcmc.NewSource(2))
	if k1.String() == k2.String() {
		t.Errorf("seeds 1 and 2 shuffled to the same key %q", k1.String())
	}
}
