package corpus_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"prolom/internal/corpus"
	"prolom/pkg/cipher"
)

func TestList(t *testing.T) {
	want := []string{"clockmaker", "voyage"}
	if diff := cmp.Diff(want, corpus.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	text, err := corpus.Load(corpus.Default)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(text) < 4000 {
		t.Errorf("default corpus is %d bytes, want a few thousand at least", len(text))
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := corpus.Load("atlantis")
	if err == nil {
		t.Fatal("Load accepted an unknown corpus")
	}
	if !strings.Contains(err.Error(), "voyage") {
		t.Errorf("error does not list the available corpora: %v", err)
	}
}

func TestMatrix_ReflectsEnglishPairs(t *testing.T) {
	a := cipher.Standard()
	m, err := corpus.Matrix(a, corpus.Default)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	// TH is everywhere in English prose; QQ never occurs.
	if th, qq := m.Weight('T', 'H'), m.Weight('Q', 'Q'); th <= qq {
		t.Errorf("Weight(T,H) = %v not above Weight(Q,Q) = %v", th, qq)
	}
}
