package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/santa/internal/core"
)

// Scenario describes one draw and its expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	Roster []core.Participant `yaml:"roster"`

	// Seed selects a seeded PCG source. Ignored when Picks is set.
	Seed *uint64 `yaml:"seed,omitempty"`

	// Picks scripts every random choice; see engine.ScriptedSource.
	Picks []int `yaml:"picks,omitempty"`

	// MaxAttempts overrides engine.DefaultMaxAttempts when positive.
	MaxAttempts int `yaml:"max_attempts,omitempty"`

	// SetID fixes the generated set ID. Defaults to "test-set-default" so
	// traces are stable.
	SetID string `yaml:"set_id,omitempty"`

	Expect Expect `yaml:"expect"`
}

// Expect lists the checks for a scenario. Zero values are not checked.
type Expect struct {
	// Error is the expected error code; empty means success is expected.
	Error string `yaml:"error,omitempty"`

	Size int `yaml:"size,omitempty"`

	Attempts int `yaml:"attempts,omitempty"`

	// Receivers are the expected receiver names in giver order.
	Receivers []string `yaml:"receivers,omitempty"`
}

// LoadScenario reads a scenario file, validates it against the CUE schema
// and decodes it strictly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario validates and decodes scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateRaw(raw); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
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

	out := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		out = append(out, s)
	}
	return out, nil
}
