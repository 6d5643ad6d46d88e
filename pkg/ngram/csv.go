package ngram

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"prolom/pkg/cipher"
)

// WriteCSV writes the matrix as n rows of n comma-separated weights, in
// alphabet order, using the shortest representation that parses back to the
// exact same float64.
func (m *TransitionMatrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	n := m.alpha.Len()
	rec := make([]string, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rec[j] = strconv.FormatFloat(m.weights[i*n+j], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write matrix row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a matrix in the WriteCSV layout and aligns it to the given
// alphabet. A table whose shape does not match the alphabet is rejected.
func ReadCSV(a *cipher.Alphabet, r io.Reader) (*TransitionMatrix, error) {
	n := a.Len()
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = n
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	if len(recs) != n {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrDimension, len(recs), n)
	}
	m := &TransitionMatrix{
		alpha:   a,
		weights: make([]float64, n*n),
		floor:   DefaultFloor,
	}
	for i, rec := range recs {
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix cell %d,%d: %w", i, j, err)
			}
			m.weights[i*n+j] = v
		}
	}
	return m, nil
}
