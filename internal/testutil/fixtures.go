// Package testutil provides shared fixtures for battle tests: unit types with
// known stats and scripted randomness sources.
package testutil

import (
	"sync"

	"github.com/cory-johannsen/hexbattle/internal/game/unit"
)

// UnitType builds a unit type with the given stats. The name mirrors the ID.
func UnitType(id string, speed, damage, ranged, maxHealth int) *unit.Type {
	return &unit.Type{
		ID:             id,
		Name:           id,
		Speed:          speed,
		Damage:         damage,
		RangedStrength: ranged,
		MaxHealth:      maxHealth,
	}
}

// Spearman is a melee type: speed 3, damage 3, health 10.
func Spearman() *unit.Type { return UnitType("spearman", 3, 3, 0, 10) }

// Archer is a ranged type: speed 2, damage 2, ranged strength 4, health 8.
func Archer() *unit.Type { return UnitType("archer", 2, 2, 4, 8) }

// Horseman is a fast melee type: speed 5, damage 5, health 15.
func Horseman() *unit.Type { return UnitType("horseman", 5, 5, 0, 15) }

// Militia is a slow, self-sufficient melee type: speed 2, damage 2, health 8.
func Militia() *unit.Type {
	t := UnitType("militia", 2, 2, 0, 8)
	t.SelfSufficient = true
	return t
}

// Registry returns a unit.Registry holding Spearman, Archer, Horseman and Militia.
func Registry() *unit.Registry {
	reg, err := unit.NewRegistryFromTypes([]*unit.Type{Spearman(), Archer(), Horseman(), Militia()})
	if err != nil {
		panic(err)
	}
	return reg
}

// ScriptedSource replays values in order, wrapping around, each reduced modulo n.
// Negative values count back from n, so -1 always yields n-1.
// It is safe for concurrent use.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewScriptedSource returns a source that replays values.
//
// Precondition: len(values) > 0.
func NewScriptedSource(values ...int) *ScriptedSource {
	if len(values) == 0 {
		panic("testutil: NewScriptedSource requires at least one value")
	}
	return &ScriptedSource{values: values}
}

// Intn returns the next scripted value modulo n.
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := (s.values[s.next%len(s.values)]%n + n) % n
	s.next++
	return v
}

// Draws returns how many values have been consumed.
func (s *ScriptedSource) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// NeverSource makes every probability check below 1 fail.
func NeverSource() *ScriptedSource { return NewScriptedSource(-1) }

// AlwaysSource makes every probability check above 0 succeed.
func AlwaysSource() *ScriptedSource { return NewScriptedSource(0) }
