package mcmc_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"prolom/pkg/cipher"
	"prolom/pkg/mcmc"
	"prolom/pkg/ngram"
)

func quoteMatrix(t *testing.T) *ngram.TransitionMatrix {
	t.Helper()
	return ngram.Train(cipher.Standard(),
		"All happy families are alike, each unhappy family is unhappy in its own way.",
	)
}

func TestBreaker_DefaultIterations(t *testing.T) {
	res, err := mcmc.NewBreaker().
		Ciphertext("FAMILIES_ALIKE").
		Matrix(quoteMatrix(t)).
		Rand(mcmc.NewSource(5)).
		Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := mcmc.DefaultIterations + 1; len(res.Trajectory) != want {
		t.Errorf("len(Trajectory) = %d, want default budget %d", len(res.Trajectory), want)
	}
}

func TestBreaker_SettersChainAndOverwrite(t *testing.T) {
	b := mcmc.NewBreaker()
	if b.Ciphertext("X") != b {
		t.Fatal("Ciphertext returned a different object")
	}

	res, err := b.
		Ciphertext("FAMILY_WAY").
		Matrix(quoteMatrix(t)).
		Iterations(50).
		Iterations(9).
		Rand(mcmc.NewSource(2)).
		Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Trajectory) != 10 {
		t.Errorf("len(Trajectory) = %d, want the later Iterations call to win (10)", len(res.Trajectory))
	}
}

func TestBreaker_StartKeyHonored(t *testing.T) {
	start := "QWERTYUIOPASDFGHJKLZXCVBNM_"
	res, err := mcmc.NewBreaker().
		Ciphertext("ALIKE").
		Matrix(quoteMatrix(t)).
		StartKey(start).
		Iterations(0).
		Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Key != start {
		t.Errorf("Key = %q, want the configured start key", res.Key)
	}
}

func TestBreaker_StartKeyErrors(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		_, err := mcmc.NewBreaker().
			Ciphertext("ALIKE").
			Matrix(quoteMatrix(t)).
			StartKey("ABC").
			Execute()
		var ce *mcmc.ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("err = %v, want *ConfigError", err)
		}
	})

	t.Run("repeated symbol", func(t *testing.T) {
		_, err := mcmc.NewBreaker().
			Ciphertext("ALIKE").
			Matrix(quoteMatrix(t)).
			StartKey("AACDEFGHIJKLMNOPQRSTUVWXYZ_").
			Execute()
		var ce *mcmc.ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("err = %v, want *ConfigError", err)
		}
	})

	t.Run("foreign symbol", func(t *testing.T) {
		_, err := mcmc.NewBreaker().
			Ciphertext("ALIKE").
			Matrix(quoteMatrix(t)).
			StartKey("!BCDEFGHIJKLMNOPQRSTUVWXYZ_").
			Execute()
		var se *cipher.SymbolError
		if !errors.As(err, &se) {
			t.Fatalf("err = %v, want *SymbolError", err)
		}
	})
}

func TestBreaker_EmptyCiphertext(t *testing.T) {
	_, err := mcmc.NewBreaker().Matrix(quoteMatrix(t)).Execute()
	var ce *mcmc.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
}

func TestBreaker_ExecutesAreIndependent(t *testing.T) {
	m := quoteMatrix(t)
	b := mcmc.NewBreaker().
		Ciphertext("EACH_UNHAPPY_FAMILY").
		Matrix(m).
		Iterations(120)

	// Re-seeding before each Execute must reproduce the run exactly: no
	// search state leaks from one execution into the next.
	first, err := b.Rand(mcmc.NewSource(99)).Execute()
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	second, err := b.Rand(mcmc.NewSource(99)).Execute()
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reseeded runs differ (-first +second):\n%s", diff)
	}
}
