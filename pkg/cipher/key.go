package cipher

import "fmt"

// Key is a permutation of an alphabet: position i holds the plaintext
// symbol that cipher symbol alphabet[i] decodes to. A Key is an immutable
// value; Swap and Invert return new keys and the lookup tables are built
// once at construction, so Decrypt and Encrypt are single table hops per
// byte on the search hot path.
type Key struct {
	alpha *Alphabet
	seq   string
	dec   [256]byte // cipher symbol -> plain symbol
	enc   [256]byte // plain symbol -> cipher symbol
}

// NewKey validates seq as a permutation of the alphabet and builds a key
// from it. Length mismatches return ErrKeyLength, foreign symbols a
// *SymbolError, and repeated symbols ErrNotPermutation.
func NewKey(a *Alphabet, seq string) (*Key, error) {
	if len(seq) != a.Len() {
		return nil, fmt.Errorf("%w: key has %d symbols, alphabet has %d", ErrKeyLength, len(seq), a.Len())
	}
	var used [256]bool
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if !a.Contains(c) {
			return nil, &SymbolError{Symbol: c, Pos: i}
		}
		if used[c] {
			return nil, fmt.Errorf("%w: symbol %q repeats at position %d", ErrNotPermutation, c, i)
		}
		used[c] = true
	}
	return newKeyUnchecked(a, seq), nil
}

// newKeyUnchecked builds the lookup tables for a seq already known to be a
// permutation of a. Internal fast path for Swap, Invert and Identity.
func newKeyUnchecked(a *Alphabet, seq string) *Key {
	k := &Key{alpha: a, seq: seq}
	for i := 0; i < len(seq); i++ {
		c := a.At(i) // cipher symbol
		p := seq[i]  // plain symbol
		k.dec[c] = p
		k.enc[p] = c
	}
	return k
}

// Identity returns the key mapping every symbol to itself.
func Identity(a *Alphabet) *Key {
	return newKeyUnchecked(a, a.Symbols())
}

// Alphabet returns the alphabet the key permutes.
func (k *Key) Alphabet() *Alphabet { return k.alpha }

// String returns the key's symbol sequence.
func (k *Key) String() string { return k.seq }

// Decrypt maps each ciphertext symbol through the key. A byte outside the
// alphabet fails with a *SymbolError; there is no silent pass-through.
func (k *Key) Decrypt(text string) (string, error) {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !k.alpha.Contains(c) {
			return "", &SymbolError{Symbol: c, Pos: i}
		}
		out[i] = k.dec[c]
	}
	return string(out), nil
}

// Encrypt maps each plaintext symbol to the cipher symbol that decodes to
// it: the exact inverse of Decrypt under the same key.
func (k *Key) Encrypt(text string) (string, error) {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !k.alpha.Contains(c) {
			return "", &SymbolError{Symbol: c, Pos: i}
		}
		out[i] = k.enc[c]
	}
	return string(out), nil
}

// Invert returns the key whose Decrypt undoes this key's Decrypt:
// decrypting with k and then with k.Invert() restores the input.
func (k *Key) Invert() *Key {
	inv := make([]byte, k.alpha.Len())
	for i := 0; i < len(k.seq); i++ {
		// cipher symbol alphabet[i] decodes to seq[i]; the inverse key must
		// decode seq[i] back to alphabet[i].
		inv[k.alpha.Index(k.seq[i])] = k.alpha.At(i)
	}
	return newKeyUnchecked(k.alpha, string(inv))
}

// Swap returns a new key with the target symbols at positions i and j
// exchanged. Positions must be within the alphabet; out-of-range positions
// are a programmer error and panic like any slice index.
func (k *Key) Swap(i, j int) *Key {
	b := []byte(k.seq)
	b[i], b[j] = b[j], b[i]
	return newKeyUnchecked(k.alpha, string(b))
}
