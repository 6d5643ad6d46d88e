// Package scenarios ships the embedded evaluation scenarios: known
// plaintexts encrypted under known keys, used to measure how well the
// search recovers them.
package scenarios

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"prolom/internal/corpus"
	"prolom/pkg/cipher"
)

//go:embed *.yaml
var scenarioFS embed.FS

// Scenario is one evaluation case. Plaintext is raw prose; the evaluator
// normalizes it into the alphabet before encrypting under Key.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Corpus      string `yaml:"corpus"`
	Key         string `yaml:"key"`
	Iterations  int    `yaml:"iterations"`
	Seed        uint64 `yaml:"seed"`
	Plaintext   string `yaml:"plaintext"`
}

// LoadScenario reads a scenario by name from the embedded YAML files.
func LoadScenario(name string) (*Scenario, error) {
	data, err := scenarioFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario %q not found (available: %s): %w",
			name, strings.Join(ListScenarios(), ", "), err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", name, err)
	}
	return &s, nil
}

// ListScenarios returns the names of all embedded scenarios, sorted.
func ListScenarios() []string {
	entries, _ := scenarioFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Validate checks that the scenario is runnable: the corpus exists, the key
// is a permutation of the standard alphabet, and there is text to encrypt.
func (s *Scenario) Validate() error {
	if s.Plaintext == "" {
		return errors.New("scenarios: empty plaintext")
	}
	if s.Iterations <= 0 {
		return fmt.Errorf("scenarios: iterations must be positive, got %d", s.Iterations)
	}
	if _, err := cipher.NewKey(cipher.Standard(), s.Key); err != nil {
		return fmt.Errorf("scenarios: key: %w", err)
	}
	if _, err := corpus.Load(s.Corpus); err != nil {
		return err
	}
	return nil
}
