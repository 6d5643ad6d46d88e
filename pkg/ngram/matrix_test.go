package ngram_test

import (
	"errors"
	"testing"

	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

func triAlphabet(t *testing.T) *cipher.Alphabet {
	t.Helper()
	a, err := cipher.NewAlphabet("ABC")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	return a
}

func TestNewTransitionMatrix_Dimension(t *testing.T) {
	a := triAlphabet(t)

	t.Run("wrong row count", func(t *testing.T) {
		_, err := ngram.NewTransitionMatrix(a, [][]float64{{0, 0, 0}, {0, 0, 0}})
		if !errors.Is(err, ngram.ErrDimension) {
			t.Fatalf("err = %v, want ErrDimension", err)
		}
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ngram.NewTransitionMatrix(a, [][]float64{
			{0, 0, 0},
			{0, 0},
			{0, 0, 0},
		})
		if !errors.Is(err, ngram.ErrDimension) {
			t.Fatalf("err = %v, want ErrDimension", err)
		}
	})
}

func TestScore_SumsConsecutivePairs(t *testing.T) {
	a := triAlphabet(t)
	m, err := ngram.NewTransitionMatrix(a, [][]float64{
		{-1, -2, -3},
		{-4, -5, -6},
		{-7, -8, -9},
	})
	if err != nil {
		t.Fatalf("NewTransitionMatrix: %v", err)
	}

	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"A", 0},
		{"AB", -2},
		{"ABCA", -2 + -6 + -7},
		{"AAAA", -1 * 3},
	}
	for _, tt := range tests {
		if got := m.Score(tt.text); got != tt.want {
			t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestScore_FloorForUnknownPairs(t *testing.T) {
	a := triAlphabet(t)
	m, err := ngram.NewTransitionMatrix(a, [][]float64{
		{-1, -1, -1},
		{-1, -1, -1},
		{-1, -1, -1},
	})
	if err != nil {
		t.Fatalf("NewTransitionMatrix: %v", err)
	}

	// 'X' is not in the alphabet, so both pairs touching it take the floor.
	want := m.Floor()*2 + -1
	if got := m.Score("AXBA"); got != want {
		t.Errorf("Score(\"AXBA\") = %v, want %v", got, want)
	}
}

func TestScore_Deterministic(t *testing.T) {
	a := cipher.Standard()
	m := ngram.Train(a, "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG")
	text := "SPHINX_OF_BLACK_QUARTZ_JUDGE_MY_VOW"
	first := m.Score(text)
	for i := 0; i < 10; i++ {
		if got := m.Score(text); got != first {
			t.Fatalf("Score run %d = %v, want %v", i, got, first)
		}
	}
}

func TestWeight_OutsideAlphabet(t *testing.T) {
	a := triAlphabet(t)
	m, err := ngram.NewTransitionMatrix(a, [][]float64{
		{-1, -2, -3},
		{-4, -5, -6},
		{-7, -8, -9},
	})
	if err != nil {
		t.Fatalf("NewTransitionMatrix: %v", err)
	}
	if got := m.Weight('A', 'B'); got != -2 {
		t.Errorf("Weight(A,B) = %v, want -2", got)
	}
	if got := m.Weight('A', '?'); got != m.Floor() {
		t.Errorf("Weight(A,?) = %v, want floor %v", got, m.Floor())
	}
}
