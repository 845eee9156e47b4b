package army

import (
	"fmt"

	"github.com/cory-johannsen/hexbattle/internal/game/unit"
)

// DefaultSlots is the slot count of an army when configuration does not override it.
const DefaultSlots = 4

// foodPerUnit is the number of units one food ration feeds.
const foodPerUnit = 30.0

// Slot is one position of an army: either empty or holding a stack.
type Slot struct {
	stack *TroopStack
}

// Empty reports whether the slot holds no stack.
func (s Slot) Empty() bool { return s.stack == nil }

// Stack returns the occupying stack, or nil when empty.
func (s Slot) Stack() *TroopStack { return s.stack }

// Army is a fixed-size, ordered sequence of optional troop stacks fighting on one side.
//
// Invariant: len(slots) never changes after New; a stack occupies at most one slot.
type Army struct {
	side  Side
	slots []Slot
}

// New creates an empty army with maxSlots slots.
//
// Precondition: maxSlots >= 1; panics otherwise.
func New(side Side, maxSlots int) *Army {
	if maxSlots < 1 {
		panic(fmt.Sprintf("army.New: maxSlots must be >= 1, got %d", maxSlots))
	}
	return &Army{side: side, slots: make([]Slot, maxSlots)}
}

// Side returns the side the army fights for.
func (a *Army) Side() Side { return a.side }

// MaxSlots returns the fixed slot count.
func (a *Army) MaxSlots() int { return len(a.slots) }

// AddUnits merges amount units of t into the army.
//
// Postcondition: if a stack of t exists its Amount and CurrentAmount grow by amount;
// otherwise a new stack fills the first empty slot. Returns false, without mutation,
// when amount <= 0 or no stack of t exists and every slot is taken.
func (a *Army) AddUnits(t *unit.Type, amount int) bool {
	if amount <= 0 {
		return false
	}
	for _, s := range a.slots {
		if s.stack != nil && s.stack.Type.ID == t.ID {
			s.stack.Amount += amount
			s.stack.CurrentAmount += amount
			return true
		}
	}
	for i := range a.slots {
		if a.slots[i].stack == nil {
			a.slots[i].stack = NewTroopStack(t, amount, a.side)
			return true
		}
	}
	return false
}

// FillArmy replaces every slot with stacks of t sharing total units as evenly
// as possible; the first total%MaxSlots slots receive one extra unit.
//
// Postcondition: on success slot i holds total/MaxSlots units, plus one when
// i < total%MaxSlots; a slot whose share is zero is left empty rather than
// holding a zero-amount stack. On error the army is unchanged.
func (a *Army) FillArmy(t *unit.Type, total int) error {
	if total <= 0 {
		return fmt.Errorf("army: FillArmy: total must be > 0, got %d", total)
	}
	n := len(a.slots)
	per, rem := total/n, total%n
	for i := range a.slots {
		amount := per
		if i < rem {
			amount++
		}
		if amount == 0 {
			a.slots[i].stack = nil
			continue
		}
		a.slots[i].stack = NewTroopStack(t, amount, a.side)
	}
	return nil
}

// TroopAt returns the stack in slot index and whether one is there.
// Out-of-range indices report (nil, false).
func (a *Army) TroopAt(index int) (*TroopStack, bool) {
	if !a.inBounds(index) || a.slots[index].stack == nil {
		return nil, false
	}
	return a.slots[index].stack, true
}

// RemoveTroopAt empties slot index. Out-of-range indices are a no-op.
func (a *Army) RemoveTroopAt(index int) {
	if !a.inBounds(index) {
		return
	}
	a.slots[index].stack = nil
}

// SetTroopAt places stack in slot index, replacing any occupant; nil empties
// the slot. The stack takes the army's side. Out-of-range indices are a no-op.
//
// Postcondition: stack occupies exactly one slot; a stack already held by
// another slot of this army is moved, not duplicated. Moving a stack between
// armies is the caller's job: remove it from the old army first.
func (a *Army) SetTroopAt(index int, stack *TroopStack) {
	if !a.inBounds(index) {
		return
	}
	if stack != nil {
		if prev := a.IndexOf(stack); prev >= 0 {
			a.slots[prev].stack = nil
		}
		stack.Side = a.side
	}
	a.slots[index].stack = stack
}

// SwapTroops exchanges the contents of slots i and j. Out-of-range indices are a no-op.
func (a *Army) SwapTroops(i, j int) {
	if !a.inBounds(i) || !a.inBounds(j) {
		return
	}
	a.slots[i], a.slots[j] = a.slots[j], a.slots[i]
}

// Contains reports whether stack occupies one of the army's slots.
func (a *Army) Contains(stack *TroopStack) bool {
	return a.IndexOf(stack) >= 0
}

// IndexOf returns the slot index holding stack, or -1.
func (a *Army) IndexOf(stack *TroopStack) int {
	if stack == nil {
		return -1
	}
	for i, s := range a.slots {
		if s.stack == stack {
			return i
		}
	}
	return -1
}

// AllTroops returns one entry per slot in slot order; empty slots are nil.
func (a *Army) AllTroops() []*TroopStack {
	out := make([]*TroopStack, len(a.slots))
	for i, s := range a.slots {
		out[i] = s.stack
	}
	return out
}

// Slots returns a copy of the slot sequence.
func (a *Army) Slots() []Slot {
	out := make([]Slot, len(a.slots))
	copy(out, a.slots)
	return out
}

// Living returns the stacks with CurrentAmount > 0 in slot order.
func (a *Army) Living() []*TroopStack {
	var out []*TroopStack
	for _, s := range a.slots {
		if s.stack != nil && s.stack.IsAlive() {
			out = append(out, s.stack)
		}
	}
	return out
}

// HasLivingTroops reports whether any stack has CurrentAmount > 0.
func (a *Army) HasLivingTroops() bool {
	for _, s := range a.slots {
		if s.stack != nil && s.stack.IsAlive() {
			return true
		}
	}
	return false
}

// FoodMaintenance returns the food the army consumes per turn: CurrentAmount/30
// per stack. Self-sufficient types are free while the army sits in a city.
func (a *Army) FoodMaintenance(inCity bool) float64 {
	var food float64
	for _, s := range a.slots {
		if s.stack == nil {
			continue
		}
		if inCity && s.stack.Type.SelfSufficient {
			continue
		}
		food += float64(s.stack.CurrentAmount) / foodPerUnit
	}
	return food
}

// Clone returns a deep copy of the army. Unit types are shared.
func (a *Army) Clone() *Army {
	cp := &Army{side: a.side, slots: make([]Slot, len(a.slots))}
	for i, s := range a.slots {
		if s.stack != nil {
			cp.slots[i].stack = s.stack.Clone()
		}
	}
	return cp
}

func (a *Army) inBounds(index int) bool {
	return index >= 0 && index < len(a.slots)
}
