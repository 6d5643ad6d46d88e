// Package corpus ships the reference texts bundled with prolom. They feed
// the bigram trainer whenever the caller does not bring a matrix of their
// own.
package corpus

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

//go:embed *.txt
var corpusFS embed.FS

// Default is the corpus used when none is named.
const Default = "voyage"

// Load returns the raw text of an embedded corpus by name.
func Load(name string) (string, error) {
	data, err := corpusFS.ReadFile(name + ".txt")
	if err != nil {
		return "", fmt.Errorf("corpus %q not found (available: %s): %w",
			name, strings.Join(List(), ", "), err)
	}
	return string(data), nil
}

// List returns the names of all embedded corpora, sorted.
func List() []string {
	entries, _ := corpusFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
		}
	}
	sort.Strings(names)
	return names
}

// Matrix trains a transition matrix over a from the named corpus.
func Matrix(a *cipher.Alphabet, name string) (*ngram.TransitionMatrix, error) {
	text, err := Load(name)
	if err != nil {
		return nil, err
	}
	return ngram.Train(a, text), nil
}
