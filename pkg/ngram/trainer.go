package ngram

import (
	"fmt"
	"io"
	"math"

	"prolom/pkg/cipher"
)

// Trainer accumulates bigram counts from corpus text and produces a smoothed
// TransitionMatrix. Text is normalized into the alphabet before counting
// (case folding, foreign runs collapsed to the separator), so raw prose can
// be fed directly. Counting never crosses the boundary between two Add calls.
type Trainer struct {
	alpha  *cipher.Alphabet
	counts []int // row-major, n*n
}

// NewTrainer returns an empty trainer for the given alphabet.
func NewTrainer(a *cipher.Alphabet) *Trainer {
	return &Trainer{
		alpha:  a,
		counts: make([]int, a.Len()*a.Len()),
	}
}

// Add normalizes text and counts its consecutive symbol pairs.
func (t *Trainer) Add(text string) {
	norm := t.alpha.Normalize(text)
	if len(norm) < 2 {
		return
	}
	n := t.alpha.Len()
	prev := t.alpha.Index(norm[0])
	for i := 1; i < len(norm); i++ {
		cur := t.alpha.Index(norm[i])
		t.counts[prev*n+cur]++
		prev = cur
	}
}

// AddReader reads r to the end and feeds its contents to Add.
func (t *Trainer) AddReader(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	t.Add(string(b))
	return nil
}

// Matrix builds the transition matrix from the counts seen so far. Each row
// is add-one smoothed and normalized, so every cell is a finite
// log-probability and each row sums to one in probability space. The trainer
// may keep accumulating afterwards; the returned matrix does not change.
func (t *Trainer) Matrix() *TransitionMatrix {
	n := t.alpha.Len()
	m := &TransitionMatrix{
		alpha:   t.alpha,
		weights: make([]float64, n*n),
		floor:   DefaultFloor,
	}
	for i := 0; i < n; i++ {
		row := t.counts[i*n : (i+1)*n]
		total := n
		for _, c := range row {
			total += c
		}
		for j, c := range row {
			m.weights[i*n+j] = math.Log(float64(c+1) / float64(total))
		}
	}
	return m
}

// Train is a convenience for building a matrix from texts in one call.
func Train(a *cipher.Alphabet, texts ...string) *TransitionMatrix {
	t := NewTrainer(a)
	for _, text := range texts {
		t.Add(text)
	}
	return t.Matrix()
}
