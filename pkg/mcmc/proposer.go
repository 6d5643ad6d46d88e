package mcmc

import (
	"strings"

	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

// Proposer generates a neighboring key from the current candidate. Proposals
// must keep the walk irreducible over the permutation space: any key must
// stay reachable from any other through a finite proposal sequence.
type Proposer interface {
	Propose(src Source, cur Candidate) *cipher.Key
}

// SwapProposer is the plain symmetric proposal: swap the targets of two
// distinct uniformly chosen key positions. A swap is its own inverse, so the
// acceptance ratio needs no proposal-density correction.
type SwapProposer struct{}

func (SwapProposer) Propose(src Source, cur Candidate) *cipher.Key {
	return uniformSwap(src, cur.Key)
}

// uniformSwap draws two distinct positions in two IntN calls and swaps them.
func uniformSwap(src Source, k *cipher.Key) *cipher.Key {
	n := k.Alphabet().Len()
	i := src.IntN(n)
	j := src.IntN(n - 1)
	if j >= i {
		j++
	}
	return k.Swap(i, j)
}

// GuidedProposer mixes uniform swaps with targeted ones: half the time it
// swaps the two key positions producing the worst-scoring symbol pair of the
// current decryption. It needs the reference matrix to rank pairs. When no
// usable pair exists, or the worst pair is a doubled symbol, it falls back
// to a uniform swap so the walk never stalls.
type GuidedProposer struct {
	matrix *ngram.TransitionMatrix
}

// NewGuidedProposer returns a proposer guided by m.
func NewGuidedProposer(m *ngram.TransitionMatrix) *GuidedProposer {
	return &GuidedProposer{matrix: m}
}

func (g *GuidedProposer) Propose(src Source, cur Candidate) *cipher.Key {
	if src.Float64() < 0.5 {
		return uniformSwap(src, cur.Key)
	}
	a, b, ok := g.worstPair(cur.Plaintext)
	if !ok {
		return uniformSwap(src, cur.Key)
	}
	seq := cur.Key.String()
	i, j := strings.IndexByte(seq, a), strings.IndexByte(seq, b)
	if i < 0 || j < 0 || i == j {
		return uniformSwap(src, cur.Key)
	}
	return cur.Key.Swap(i, j)
}

// worstPair returns the consecutive pair of text with the lowest reference
// weight. Pairs containing symbols outside the matrix alphabet are skipped.
// The earliest minimum wins, keeping the choice deterministic.
func (g *GuidedProposer) worstPair(text string) (a, b byte, ok bool) {
	alpha := g.matrix.Alphabet()
	worst := 0.0
	for i := 0; i+1 < len(text); i++ {
		if !alpha.Contains(text[i]) || !alpha.Contains(text[i+1]) {
			continue
		}
		w := g.matrix.Weight(text[i], text[i+1])
		if !ok || w < worst {
			a, b, worst, ok = text[i], text[i+1], w, true
		}
	}
	return a, b, ok
}
