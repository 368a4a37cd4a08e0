package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nordmindi/kinship-atlas-sub002/internal/engine"
	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// Scenario defines a conformance scenario: a population, relationship
// writes with expected outcomes, and the snapshot that follows.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description"`

	// People is the population, inserted before any writes.
	People []PersonFixture `yaml:"people"`

	// RawEdges are edge records written directly to the store, below
	// the writer's validation. They reproduce states the writer refuses
	// to create, such as reciprocal duplicates from a legacy import.
	RawEdges []EdgeFixture `yaml:"raw_edges,omitempty"`

	// Writes is the sequence of relationship writes to perform.
	Writes []WriteStep `yaml:"writes,omitempty"`
}

// PersonFixture seeds one person record.
type PersonFixture struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name,omitempty"`
	Birth string `yaml:"birth,omitempty"`
	Death string `yaml:"death,omitempty"`
}

// EdgeFixture seeds one raw edge record.
type EdgeFixture struct {
	ID   string `yaml:"id"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Kind string `yaml:"kind"`
}

// WriteStep is one CreateRelationship call with an optional expected
// outcome. With no expect clause the write must simply not error.
type WriteStep struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Kind string `yaml:"kind"`

	// Mode defaults to strict when empty.
	Mode string `yaml:"mode,omitempty"`

	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected write outcome. Only set fields
// are validated.
type ExpectClause struct {
	// Error is the expected error code, e.g. CHRONOLOGY_VIOLATION or
	// CONFLICTING_EDGE. Empty means the write must succeed.
	Error string `yaml:"error,omitempty"`

	Created    *bool  `yaml:"created,omitempty"`
	Corrected  *bool  `yaml:"corrected,omitempty"`
	ActualKind string `yaml:"actual_kind,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos fail loudly instead of silently passing.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// validateScenario checks required fields and referential integrity so
// a broken fixture fails at load time, not halfway through a run.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.People) == 0 {
		return fmt.Errorf("people list is required and must be non-empty")
	}

	known := make(map[string]bool, len(s.People))
	for i, p := range s.People {
		if p.ID == "" {
			return fmt.Errorf("people[%d]: id is required", i)
		}
		if known[p.ID] {
			return fmt.Errorf("people[%d]: duplicate id %q", i, p.ID)
		}
		known[p.ID] = true
	}

	for i, e := range s.RawEdges {
		if e.ID == "" {
			return fmt.Errorf("raw_edges[%d]: id is required", i)
		}
		if !known[e.From] || !known[e.To] {
			return fmt.Errorf("raw_edges[%d]: endpoints must name people in the scenario", i)
		}
	}

	for i, w := range s.Writes {
		if !known[w.From] || !known[w.To] {
			return fmt.Errorf("writes[%d]: endpoints must name people in the scenario", i)
		}
		if _, err := kin.ParseKind(w.Kind); err != nil {
			return fmt.Errorf("writes[%d]: %w", i, err)
		}
		if w.Mode != "" && !engine.Mode(w.Mode).IsValid() {
			return fmt.Errorf("writes[%d]: unknown mode %q", i, w.Mode)
		}
	}

	return nil
}
