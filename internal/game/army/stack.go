// Package army models the troop stacks and fixed-slot armies that take part in a battle.
package army

import (
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
	"github.com/cory-johannsen/hexbattle/internal/game/unit"
)

// Side identifies which army a stack fights for.
type Side int

const (
	Attacker Side = iota
	Defender
)

// String returns "attacker" or "defender".
func (s Side) String() string {
	switch s {
	case Attacker:
		return "attacker"
	case Defender:
		return "defender"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Attacker {
		return Defender
	}
	return Attacker
}

// TroopStack is a group of identical units tracked as one entity.
//
// Invariant: 0 <= CurrentAmount; 0 <= CurrentHealth <= Type.MaxHealth.
// CurrentHealth is the health of the front unit; the others are at full health.
type TroopStack struct {
	Type     *unit.Type
	Position hex.Coord
	// Amount is the count the stack entered the battle with.
	Amount int
	// CurrentAmount is the number of living units.
	CurrentAmount int
	CurrentHealth int
	Side          Side
}

// NewTroopStack creates a full-strength stack of amount units of t.
//
// Precondition: t must not be nil; amount >= 0.
// Postcondition: CurrentAmount == Amount == amount; CurrentHealth == t.MaxHealth.
func NewTroopStack(t *unit.Type, amount int, side Side) *TroopStack {
	return &TroopStack{
		Type:          t,
		Amount:        amount,
		CurrentAmount: amount,
		CurrentHealth: t.MaxHealth,
		Side:          side,
	}
}

// IsAlive reports whether at least one unit of the stack is still standing.
func (s *TroopStack) IsAlive() bool { return s.CurrentAmount > 0 }

// TotalHealth returns the health remaining across the whole stack.
//
// Postcondition: 0 when the stack is dead.
func (s *TroopStack) TotalHealth() int {
	if s.CurrentAmount <= 0 {
		return 0
	}
	return (s.CurrentAmount-1)*s.Type.MaxHealth + s.CurrentHealth
}

// Clone returns a copy of s with its own mutable state. The unit type is shared.
func (s *TroopStack) Clone() *TroopStack {
	cp := *s
	return &cp
}
