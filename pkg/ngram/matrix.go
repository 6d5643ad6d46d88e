// Package ngram trains and evaluates the bigram language models that score
// how plausible a candidate decryption is. A model is a dense table of
// log-probabilities over ordered symbol pairs of one alphabet.
package ngram

import (
	"errors"
	"fmt"

	"prolom/pkg/cipher"
)

// DefaultFloor is the log weight charged for a symbol pair the matrix has no
// entry for. It sits below any add-one-smoothed cell, so unknown pairs are
// penalized without driving a sum to -Inf.
const DefaultFloor = -20.0

// ErrDimension reports a weight table whose shape does not match the alphabet.
var ErrDimension = errors.New("ngram: matrix dimension does not match alphabet")

// TransitionMatrix holds bigram log-probabilities aligned to an alphabet:
// the weight of the ordered pair (a, b) lives at row Index(a), column
// Index(b). The matrix is immutable once built.
type TransitionMatrix struct {
	alpha   *cipher.Alphabet
	weights []float64 // row-major, n*n
	floor   float64
}

// NewTransitionMatrix builds a matrix from an n-by-n weight table, where n is
// the alphabet length. The table is copied.
func NewTransitionMatrix(a *cipher.Alphabet, weights [][]float64) (*TransitionMatrix, error) {
	n := a.Len()
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrDimension, len(weights), n)
	}
	m := &TransitionMatrix{
		alpha:   a,
		weights: make([]float64, n*n),
		floor:   DefaultFloor,
	}
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns for %d symbols", ErrDimension, i, len(row), n)
		}
		copy(m.weights[i*n:], row)
	}
	return m, nil
}

// Alphabet returns the alphabet the matrix is aligned to.
func (m *TransitionMatrix) Alphabet() *cipher.Alphabet { return m.alpha }

// Floor returns the weight used for pairs outside the table.
func (m *TransitionMatrix) Floor() float64 { return m.floor }

// Weight returns the log weight of the ordered pair (a, b), or the floor when
// either symbol is not in the alphabet.
func (m *TransitionMatrix) Weight(a, b byte) float64 {
	i, j := m.alpha.Index(a), m.alpha.Index(b)
	if i < 0 || j < 0 {
		return m.floor
	}
	return m.weights[i*m.alpha.Len()+j]
}

// Score sums the weights of every consecutive symbol pair in text. Pairs the
// matrix has no entry for contribute the floor. Texts shorter than one pair
// score 0. Score is pure: identical inputs always produce the identical sum.
func (m *TransitionMatrix) Score(text string) float64 {
	if len(text) < 2 {
		return 0
	}
	n := m.alpha.Len()
	sum := 0.0
	prev := m.alpha.Index(text[0])
	for i := 1; i < len(text); i++ {
		cur := m.alpha.Index(text[i])
		if prev < 0 || cur < 0 {
			sum += m.floor
		} else {
			sum += m.weights[prev*n+cur]
		}
		prev = cur
	}
	return sum
}
