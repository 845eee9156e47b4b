package army

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/hexbattle/internal/game/unit"
)

// StackEntry requests amount units of a unit type.
type StackEntry struct {
	Unit   string `yaml:"unit"`
	Amount int    `yaml:"amount"`
}

// FillEntry requests that every slot share total units of one type.
type FillEntry struct {
	Unit  string `yaml:"unit"`
	Total int    `yaml:"total"`
}

// SideRoster describes one army. Exactly one of Stacks and Fill is set.
type SideRoster struct {
	Stacks []StackEntry `yaml:"stacks"`
	Fill   *FillEntry   `yaml:"fill"`
}

// Roster describes both armies of a battle.
type Roster struct {
	Attacker SideRoster `yaml:"attacker"`
	Defender SideRoster `yaml:"defender"`
}

// LoadRoster reads a roster YAML file.
//
// Postcondition: Returns a parsed Roster or an error naming path.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %q: %w", path, err)
	}
	r, err := LoadRosterFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading roster %q: %w", path, err)
	}
	return r, nil
}

// LoadRosterFromBytes parses a roster from raw YAML bytes.
func LoadRosterFromBytes(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}
	return &r, nil
}

// BuildArmies populates one army per side from the roster.
//
// Precondition: reg must not be nil; slots >= 1.
// Postcondition: Returns (attacker, defender) or an error describing the first bad entry.
func (r *Roster) BuildArmies(reg *unit.Registry, slots int) (*Army, *Army, error) {
	attacker, err := r.Attacker.build(reg, Attacker, slots)
	if err != nil {
		return nil, nil, fmt.Errorf("attacker: %w", err)
	}
	defender, err := r.Defender.build(reg, Defender, slots)
	if err != nil {
		return nil, nil, fmt.Errorf("defender: %w", err)
	}
	return attacker, defender, nil
}

func (sr SideRoster) build(reg *unit.Registry, side Side, slots int) (*Army, error) {
	if sr.Fill != nil && len(sr.Stacks) > 0 {
		return nil, errors.New("stacks and fill are mutually exclusive")
	}
	a := New(side, slots)
	if sr.Fill != nil {
		t, ok := reg.Lookup(sr.Fill.Unit)
		if !ok {
			return nil, fmt.Errorf("unknown unit type %q", sr.Fill.Unit)
		}
		if err := a.FillArmy(t, sr.Fill.Total); err != nil {
			return nil, err
		}
		return a, nil
	}
	if len(sr.Stacks) == 0 {
		return nil, errors.New("roster is empty")
	}
	for i, e := range sr.Stacks {
		t, ok := reg.Lookup(e.Unit)
		if !ok {
			return nil, fmt.Errorf("stack %d: unknown unit type %q", i, e.Unit)
		}
		if !a.AddUnits(t, e.Amount) {
			return nil, fmt.Errorf("stack %d: cannot add %d %s", i, e.Amount, e.Unit)
		}
	}
	return a, nil
}
