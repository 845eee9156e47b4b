// Package battle implements the turn-based hex battle engine: turn order,
// action validation, damage resolution, and battle-end detection.
package battle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/dice"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Default probabilities of the per-action luck and morale checks.
const (
	DefaultLuckProbability   = 0.15
	DefaultMoraleProbability = 0.15
)

// StackID identifies a stack within one Engine. IDs are never reused.
type StackID int

// State is the lifecycle phase of a battle.
type State int

const (
	StateInitialized State = iota
	StateInProgress
	StateEnded
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateInProgress:
		return "in-progress"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Options holds the tunable constants of a battle.
type Options struct {
	// LuckProbability is the chance that an attack deals double damage.
	LuckProbability float64
	// MoraleProbability is the chance that an action reports a morale event.
	// Morale is reported only; it has no mechanical effect.
	MoraleProbability float64
	Field             Field
}

// DefaultOptions returns the standard constants on the default field.
func DefaultOptions() Options {
	return Options{
		LuckProbability:   DefaultLuckProbability,
		MoraleProbability: DefaultMoraleProbability,
		Field:             DefaultField(),
	}
}

// Validate checks that probabilities lie in [0, 1] and the field is non-empty.
func (o Options) Validate() error {
	if o.LuckProbability < 0 || o.LuckProbability > 1 {
		return fmt.Errorf("battle: luck probability must be in [0, 1], got %v", o.LuckProbability)
	}
	if o.MoraleProbability < 0 || o.MoraleProbability > 1 {
		return fmt.Errorf("battle: morale probability must be in [0, 1], got %v", o.MoraleProbability)
	}
	return o.Field.Validate()
}

// entry is one arena record. Dead entries stay in the arena so IDs remain stable.
type entry struct {
	stack *army.TroopStack
	owner *army.Army
	alive bool
}

// Engine resolves one battle between an attacking and a defending army.
//
// The engine is single-threaded: callers must not issue requests concurrently.
// Both armies are owned by the engine for the battle's duration; defeated stacks
// are removed from their army's slot.
type Engine struct {
	id       string
	attacker *army.Army
	defender *army.Army
	opts     Options
	roller   *dice.Roller
	logger   *zap.Logger

	stacks  []entry
	queue   []StackID
	turn    int
	round   int
	started bool
	ended   bool
}

// NewEngine deploys both armies on the field and builds the turn queue.
//
// Precondition: attacker fights for army.Attacker and defender for army.Defender;
// src must not be nil. A nil logger discards output. Every stack occupies one
// slot of one army; a stack found twice is an error.
// Postcondition: every living stack has a StackID, stands on its deployment tile
// and appears once in the turn queue; State() == StateInitialized.
func NewEngine(attacker, defender *army.Army, src dice.Source, logger *zap.Logger, opts Options) (*Engine, error) {
	if attacker == nil || defender == nil {
		return nil, errors.New("battle: both armies are required")
	}
	if attacker.Side() != army.Attacker || defender.Side() != army.Defender {
		return nil, fmt.Errorf("battle: armies must be attacker and defender, got %s and %s", attacker.Side(), defender.Side())
	}
	if src == nil {
		return nil, errors.New("battle: random source is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for _, a := range []*army.Army{attacker, defender} {
		if !a.HasLivingTroops() {
			return nil, fmt.Errorf("battle: %s army has no living troops", a.Side())
		}
		if a.MaxSlots() > opts.Field.Height {
			return nil, fmt.Errorf("battle: %s army has %d slots but the field is %d rows high", a.Side(), a.MaxSlots(), opts.Field.Height)
		}
	}
	if err := checkOwnership(attacker, defender); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.NewString()
	logger = logger.With(zap.String("battle_id", id))
	e := &Engine{
		id:       id,
		attacker: attacker,
		defender: defender,
		opts:     opts,
		roller:   dice.NewLoggedRoller(src, logger),
		logger:   logger,
	}
	e.deploy(attacker)
	e.deploy(defender)
	e.buildQueue()

	logger.Info("battle initialized",
		zap.Int("attacker_stacks", len(e.livingOf(army.Attacker))),
		zap.Int("defender_stacks", len(e.livingOf(army.Defender))),
		zap.Int("field_width", opts.Field.Width),
		zap.Int("field_height", opts.Field.Height),
	)
	return e, nil
}

// checkOwnership rejects a stack held by more than one slot, in one army or
// across both; such a stack would get two IDs and outlive its own defeat.
func checkOwnership(armies ...*army.Army) error {
	seen := make(map[*army.TroopStack]army.Side)
	for _, a := range armies {
		for slot, s := range a.AllTroops() {
			if s == nil {
				continue
			}
			if side, dup := seen[s]; dup {
				return fmt.Errorf("battle: %s slot %d holds a stack already deployed for %s", a.Side(), slot, side)
			}
			seen[s] = a.Side()
		}
	}
	return nil
}

func (e *Engine) deploy(a *army.Army) {
	for slot, s := range a.AllTroops() {
		if s == nil || !s.IsAlive() {
			continue
		}
		s.Side = a.Side()
		s.Position = e.opts.Field.DeployPosition(a.Side(), slot, a.MaxSlots())
		e.stacks = append(e.stacks, entry{stack: s, owner: a, alive: true})
	}
}

// buildQueue orders every living stack by speed, attackers first on ties.
func (e *Engine) buildQueue() {
	e.queue = e.queue[:0]
	for i, en := range e.stacks {
		if en.alive {
			e.queue = append(e.queue, StackID(i))
		}
	}
	sort.SliceStable(e.queue, func(i, j int) bool {
		a, b := e.stacks[e.queue[i]].stack, e.stacks[e.queue[j]].stack
		if a.Type.Speed != b.Type.Speed {
			return a.Type.Speed > b.Type.Speed
		}
		return a.Side == army.Attacker && b.Side == army.Defender
	})
	e.turn = 0
	e.round = 1
}

// ID returns the battle's unique identifier.
func (e *Engine) ID() string { return e.id }

// Options returns the constants the battle was created with.
func (e *Engine) Options() Options { return e.opts }

// Field returns the battlefield.
func (e *Engine) Field() Field { return e.opts.Field }

// Attacker returns the attacking army.
func (e *Engine) Attacker() *army.Army { return e.attacker }

// Defender returns the defending army.
func (e *Engine) Defender() *army.Army { return e.defender }

// Stack returns the living stack with the given ID.
//
// Postcondition: ok is false for unknown or defeated stacks.
func (e *Engine) Stack(id StackID) (*army.TroopStack, bool) {
	if id < 0 || int(id) >= len(e.stacks) || !e.stacks[id].alive {
		return nil, false
	}
	return e.stacks[id].stack, true
}

// StackIDOf returns the ID of a living stack.
func (e *Engine) StackIDOf(s *army.TroopStack) (StackID, bool) {
	for i, en := range e.stacks {
		if en.alive && en.stack == s {
			return StackID(i), true
		}
	}
	return 0, false
}

// StackAt returns the living stack standing on pos.
func (e *Engine) StackAt(pos hex.Coord) (StackID, bool) {
	for _, id := range e.queue {
		if e.stacks[id].stack.Position == pos {
			return id, true
		}
	}
	return 0, false
}

// IsHexFree reports whether no living stack stands on pos.
func (e *Engine) IsHexFree(pos hex.Coord) bool {
	_, taken := e.StackAt(pos)
	return !taken
}

// Enemies returns the living stacks opposing id, in turn order.
//
// Postcondition: empty when id is not a living stack.
func (e *Engine) Enemies(id StackID) []StackID {
	s, ok := e.Stack(id)
	if !ok {
		return nil
	}
	return e.livingOf(s.Side.Opponent())
}

// Allies returns the living stacks on id's side other than id, in turn order.
func (e *Engine) Allies(id StackID) []StackID {
	s, ok := e.Stack(id)
	if !ok {
		return nil
	}
	var out []StackID
	for _, other := range e.livingOf(s.Side) {
		if other != id {
			out = append(out, other)
		}
	}
	return out
}

func (e *Engine) livingOf(side army.Side) []StackID {
	var out []StackID
	for _, id := range e.queue {
		if e.stacks[id].stack.Side == side {
			out = append(out, id)
		}
	}
	return out
}

// IsAchievable reports whether stack id can reach pos in one action: pos is on
// the field and within the stack's speed. Occupancy is not considered.
func (e *Engine) IsAchievable(id StackID, pos hex.Coord) bool {
	s, ok := e.Stack(id)
	if !ok {
		return false
	}
	return e.opts.Field.Contains(pos) && hex.Distance(s.Position, pos) <= s.Type.Speed
}

// CanStageAt reports whether stack id may strike from pos: pos is achievable
// and either free or the stack's own tile.
func (e *Engine) CanStageAt(id StackID, pos hex.Coord) bool {
	if !e.IsAchievable(id, pos) {
		return false
	}
	s, _ := e.Stack(id)
	return pos == s.Position || e.IsHexFree(pos)
}

// ReachableTiles returns every free tile stack id can move to, in row-major
// offset order. The whole field is scanned; it is small and fixed.
func (e *Engine) ReachableTiles(id StackID) []hex.Coord {
	if _, ok := e.Stack(id); !ok {
		return nil
	}
	var out []hex.Coord
	for _, c := range e.opts.Field.Cells() {
		if e.IsAchievable(id, c) && e.IsHexFree(c) {
			out = append(out, c)
		}
	}
	return out
}

// IsOver reports whether either army has no stack with CurrentAmount > 0.
//
// Postcondition: once true, stays true for the life of the engine.
func (e *Engine) IsOver() bool {
	if !e.ended && (!e.attacker.HasLivingTroops() || !e.defender.HasLivingTroops()) {
		e.ended = true
		e.logger.Info("battle ended", zap.Int("round", e.round))
	}
	return e.ended
}

// Winner returns the side still standing once the battle is over.
func (e *Engine) Winner() (army.Side, bool) {
	if !e.IsOver() {
		return 0, false
	}
	switch {
	case e.attacker.HasLivingTroops():
		return army.Attacker, true
	case e.defender.HasLivingTroops():
		return army.Defender, true
	default:
		return 0, false
	}
}

// State returns the lifecycle phase of the battle.
func (e *Engine) State() State {
	switch {
	case e.IsOver():
		return StateEnded
	case e.started:
		return StateInProgress
	default:
		return StateInitialized
	}
}
