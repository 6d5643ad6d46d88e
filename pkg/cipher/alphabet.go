// Package cipher models the symbol space of a monoalphabetic substitution
// cipher: a fixed ordered alphabet and permutation-valued keys over it.
//
// Alphabets and keys are immutable values. Every transformation (Swap,
// Invert) returns a new key; nothing in this package mutates in place.
package cipher

import (
	"fmt"
)

// Separator is the word-separator symbol of the standard alphabet.
const Separator = '_'

// standardSymbols is the 27-symbol alphabet used by the stock language
// models: the uppercase letters plus the word separator.
const standardSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" + string(rune(Separator))

// Alphabet is a fixed ordered set of distinct single-byte symbols.
// The zero value is not usable; construct with NewAlphabet or Standard.
type Alphabet struct {
	symbols string
	index   [256]int16 // byte -> position, -1 when absent
}

// Standard returns the 27-symbol alphabet A-Z plus '_'.
func Standard() *Alphabet {
	a, err := NewAlphabet(standardSymbols)
	if err != nil {
		panic(err) // standardSymbols is a valid alphabet
	}
	return a
}

// NewAlphabet builds an alphabet from an ordered string of symbols.
// Symbols must be distinct printable ASCII bytes; at least two are required
// for a substitution to be meaningful.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) < 2 {
		return nil, fmt.Errorf("alphabet needs at least 2 symbols, got %d", len(symbols))
	}
	a := &Alphabet{symbols: symbols}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c < '!' || c > '~' {
			return nil, fmt.Errorf("alphabet symbol %q at position %d is not printable ASCII", c, i)
		}
		if a.index[c] != -1 {
			return nil, fmt.Errorf("alphabet symbol %q appears twice (positions %d and %d)", c, a.index[c], i)
		}
		a.index[c] = int16(i)
	}
	return a, nil
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the ordered symbol string.
func (a *Alphabet) Symbols() string { return a.symbols }

// At returns the symbol at position i.
func (a *Alphabet) At(i int) byte { return a.symbols[i] }

// Index returns the position of symbol c, or -1 when c is not in the alphabet.
func (a *Alphabet) Index(c byte) int { return int(a.index[c]) }

// Contains reports whether c is a member of the alphabet.
func (a *Alphabet) Contains(c byte) bool { return a.index[c] != -1 }

// SeparatorSymbol returns the alphabet's word separator and true when the
// alphabet carries one ('_' by convention).
func (a *Alphabet) SeparatorSymbol() (byte, bool) {
	if a.index[Separator] != -1 {
		return Separator, true
	}
	return 0, false
}

// Normalize maps arbitrary text into the alphabet: lowercase ASCII letters
// are uppercased when the uppercase form is a member, member symbols pass
// through, and every run of foreign bytes collapses to a single separator
// (or is dropped when the alphabet has none). Leading and trailing
// separators are trimmed.
func (a *Alphabet) Normalize(text string) string {
	sep, hasSep := a.SeparatorSymbol()
	out := make([]byte, 0, len(text))
	pendingGap := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' && a.Contains(c-'a'+'A') {
			c = c - 'a' + 'A'
		}
		if !a.Contains(c) || (hasSep && c == sep) {
			pendingGap = true
			continue
		}
		if pendingGap && hasSep && len(out) > 0 {
			out = append(out, sep)
		}
		pendingGap = false
		out = append(out, c)
	}
	return string(out)
}
