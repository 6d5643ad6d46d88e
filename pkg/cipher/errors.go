package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyLength is returned when a key string's length does not match
	// the alphabet size.
	ErrKeyLength = errors.New("cipher: key length does not match alphabet")

	// ErrNotPermutation is returned when a key repeats a symbol and is
	// therefore not a bijection over the alphabet.
	ErrNotPermutation = errors.New("cipher: key is not a permutation of the alphabet")
)

// SymbolError reports a byte outside the declared alphabet, with the
// position where it was seen. Foreign symbols never pass through silently.
type SymbolError struct {
	Symbol byte
	Pos    int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("cipher: symbol %q at position %d is not in the alphabet", e.Symbol, e.Pos)
}
