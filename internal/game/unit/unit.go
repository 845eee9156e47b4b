// Package unit provides the read-only unit-type catalog consumed by armies and battles.
package unit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type defines a unit archetype loaded from YAML.
//
// Types are shared by reference between stacks and are never mutated after loading.
type Type struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Speed is both the turn-order key and the reach, in hexes, of one action.
	Speed int `yaml:"speed"`
	// Damage is dealt per living unit of an attacking stack.
	Damage int `yaml:"damage"`
	// RangedStrength is non-zero for units that can shoot.
	RangedStrength int `yaml:"ranged_strength"`
	MaxHealth      int `yaml:"max_health"`
	// SelfSufficient units draw no food while garrisoned in a city.
	SelfSufficient bool `yaml:"self_sufficient"`
}

// IsRanged reports whether the type can perform ranged attacks.
func (t *Type) IsRanged() bool { return t.RangedStrength > 0 }

// Validate checks that the type satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty, Speed >= 1, Damage >= 0,
// RangedStrength >= 0, and MaxHealth >= 1.
func (t *Type) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("unit type: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("unit type %q: name must not be empty", t.ID)
	}
	if t.Speed < 1 {
		return fmt.Errorf("unit type %q: speed must be >= 1", t.ID)
	}
	if t.Damage < 0 {
		return fmt.Errorf("unit type %q: damage must be >= 0", t.ID)
	}
	if t.RangedStrength < 0 {
		return fmt.Errorf("unit type %q: ranged_strength must be >= 0", t.ID)
	}
	if t.MaxHealth < 1 {
		return fmt.Errorf("unit type %q: max_health must be >= 1", t.ID)
	}
	return nil
}

// LoadTypeFromBytes parses a single unit type from raw YAML bytes.
//
// Postcondition: Returns a validated *Type, or an error.
func LoadTypeFromBytes(data []byte) (*Type, error) {
	var t Type
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing unit type YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTypes reads all *.yaml files in dir and returns the parsed unit types
// sorted by ID.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all types or an error on the first parse or validate failure.
func LoadTypes(dir string) ([]*Type, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading unit dir %q: %w", dir, err)
	}

	var types []*Type
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		t, err := LoadTypeFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types, nil
}
