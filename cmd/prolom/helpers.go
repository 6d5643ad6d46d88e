package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"prolom/internal/corpus"
	"prolom/internal/store"
	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

// randomSeed draws a nonzero seed from the process entropy pool.
func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// dbPath resolves the store location: the flag when set, then the
// PROLOM_DB environment variable, then the default.
func dbPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("PROLOM_DB"); env != "" {
		return env
	}
	return store.DefaultDBPath
}

// readText returns the text for a command: the argument when present,
// otherwise the contents of file ("-" or empty means stdin).
func readText(args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}

// loadMatrix returns the reference model: a CSV file when matrixPath is set,
// otherwise a model trained from the named embedded corpus.
func loadMatrix(corpusName, matrixPath string) (*ngram.TransitionMatrix, error) {
	alpha := cipher.Standard()
	if matrixPath != "" {
		f, err := os.Open(matrixPath)
		if err != nil {
			return nil, fmt.Errorf("open matrix: %w", err)
		}
		defer f.Close()
		m, err := ngram.ReadCSV(alpha, f)
		if err != nil {
			return nil, fmt.Errorf("load matrix %s: %w", matrixPath, err)
		}
		return m, nil
	}
	if corpusName == "" {
		corpusName = corpus.Default
	}
	return corpus.Matrix(alpha, corpusName)
}
