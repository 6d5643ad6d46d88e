package ngram_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

// weightGrid extracts the full weight table for comparison.
func weightGrid(a *cipher.Alphabet, m *ngram.TransitionMatrix) [][]float64 {
	grid := make([][]float64, a.Len())
	for i := range grid {
		grid[i] = make([]float64, a.Len())
		for j := range grid[i] {
			grid[i][j] = m.Weight(a.At(i), a.At(j))
		}
	}
	return grid
}

func TestCSV_RoundTrip(t *testing.T) {
	a := cipher.Standard()
	trained := ngram.Train(a, "It was a bright cold day in April, and the clocks were striking thirteen.")

	var buf bytes.Buffer
	if err := trained.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	loaded, err := ngram.ReadCSV(a, &buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if diff := cmp.Diff(weightGrid(a, trained), weightGrid(a, loaded)); diff != "" {
		t.Errorf("weights changed across round trip (-trained +loaded):\n%s", diff)
	}
}

func TestReadCSV_WrongRowCount(t *testing.T) {
	a, err := cipher.NewAlphabet("ABC")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	_, err = ngram.ReadCSV(a, strings.NewReader("-1,-2,-3\n-4,-5,-6\n"))
	if !errors.Is(err, ngram.ErrDimension) {
		t.Fatalf("err = %v, want ErrDimension", err)
	}
}

func TestReadCSV_BadCell(t *testing.T) {
	a, err := cipher.NewAlphabet("AB")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	_, err = ngram.ReadCSV(a, strings.NewReader("-1,oops\n-3,-4\n"))
	if err == nil {
		t.Fatal("ReadCSV accepted a non-numeric cell")
	}
}
