package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario: a puzzle, a seed and the
// outcome the solver must produce for it.
type Scenario struct {
	// Name uniquely identifies the scenario. It doubles as the golden
	// file name, so keep it filesystem-safe.
	Name string `yaml:"name"`

	// Description explains what the scenario pins down.
	Description string `yaml:"description"`

	// Grid is the puzzle in nine-line text form.
	Grid string `yaml:"grid"`

	// Seed feeds the engine's random source, making the run reproducible.
	Seed int64 `yaml:"seed"`

	// MaxSteps overrides the solver's step quota when non-zero.
	MaxSteps int `yaml:"max_steps,omitempty"`

	// Expect is the required outcome.
	Expect Expect `yaml:"expect"`
}

// Expect is a scenario's required outcome.
type Expect struct {
	// Status is the required terminal status: solved, stuck or
	// quota_exceeded.
	Status string `yaml:"status"`

	// Steps, when set, is the exact number of solver steps required.
	// Only meaningful for runs whose step count does not depend on the
	// seed.
	Steps *int `yaml:"steps,omitempty"`
}

var validStatuses = []string{"solved", "stuck", "quota_exceeded"}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos fail loudly instead of silently weakening a check.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Grid == "" {
		return fmt.Errorf("grid is required")
	}
	if !slices.Contains(validStatuses, s.Expect.Status) {
		return fmt.Errorf("expect.status must be one of %v, got %q", validStatuses, s.Expect.Status)
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative")
	}
	return nil
}
