// Package ai chooses actions for stacks no human controls.
//
// The controller is a greedy single-ply heuristic. It reads the battle only
// through the engine's public queries and has no randomness of its own.
package ai

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/battle"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Controller picks and submits one action per turn for a stack.
//
// A Controller holds no battle state and may be shared across engines.
type Controller struct {
	logger *zap.Logger
}

// NewController returns a Controller. A nil logger discards output.
func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{logger: logger}
}

// Act chooses an action for stack id, submits it to e and returns the result.
//
// Precondition: e must not be nil.
// Postcondition: never panics on exhausted options; failures are reported as
// no-enemies, no-target, no-valid-move or invalid-stack.
func (c *Controller) Act(e *battle.Engine, id battle.StackID) battle.ActionResult {
	s, ok := e.Stack(id)
	if !ok {
		return battle.ActionResult{Stack: id, Error: battle.ErrorInvalidStack}
	}
	var res battle.ActionResult
	if s.Type.IsRanged() {
		res = c.shoot(e, id, s)
	} else {
		res = c.engage(e, id, s)
	}
	c.logger.Debug("ai acted",
		zap.Int("stack", int(id)),
		zap.String("unit", s.Type.ID),
		zap.Stringer("kind", res.Kind),
		zap.Stringer("error", res.Error),
	)
	return res
}

// shoot fires at the most dangerous enemy that can be hit: ranged enemies
// first, faster enemies before slower ones, turn order breaking ties.
func (c *Controller) shoot(e *battle.Engine, id battle.StackID, s *army.TroopStack) battle.ActionResult {
	enemies := e.Enemies(id)
	if len(enemies) == 0 {
		return failed(e, id, s, battle.ActionRangedAttack, battle.ErrorNoEnemies)
	}
	ranked := RankTargets(e, enemies)
	for _, target := range ranked {
		t, _ := e.Stack(target)
		res := e.RangedAttack(id, t.Position)
		if res.Success {
			return res
		}
		c.logger.Debug("ai shot refused", zap.Int("target", int(target)), zap.Stringer("error", res.Error))
	}
	return failed(e, id, s, battle.ActionRangedAttack, battle.ErrorNoTarget)
}

// engage attacks the nearest enemy from the first usable side, or closes in
// on it when no side can be reached this turn.
func (c *Controller) engage(e *battle.Engine, id battle.StackID, s *army.TroopStack) battle.ActionResult {
	enemies := e.Enemies(id)
	if len(enemies) == 0 {
		return failed(e, id, s, battle.ActionMeleeAttack, battle.ErrorNoEnemies)
	}
	target, _ := e.Stack(NearestEnemy(e, id, enemies))

	if dir, ok := AttackDirection(e, id, target.Position); ok {
		return e.MeleeAttack(id, target.Position, dir)
	}

	if dest, ok := Approach(e, id, target.Position); ok {
		return e.Move(id, dest)
	}
	return failed(e, id, s, battle.ActionMove, battle.ErrorNoValidMove)
}

// RankTargets orders candidate targets for a ranged stack: ranged units first,
// then by speed descending. Equal candidates keep their input order.
func RankTargets(e *battle.Engine, candidates []battle.StackID) []battle.StackID {
	out := make([]battle.StackID, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := e.Stack(out[i])
		b, _ := e.Stack(out[j])
		if a.Type.IsRanged() != b.Type.IsRanged() {
			return a.Type.IsRanged()
		}
		return a.Type.Speed > b.Type.Speed
	})
	return out
}

// NearestEnemy returns the candidate closest to stack id by hex distance.
//
// Precondition: candidates is non-empty and id is alive.
// Postcondition: ties go to the earliest candidate.
func NearestEnemy(e *battle.Engine, id battle.StackID, candidates []battle.StackID) battle.StackID {
	s, _ := e.Stack(id)
	best := candidates[0]
	bestDist := -1
	for _, cand := range candidates {
		t, _ := e.Stack(cand)
		if d := hex.Distance(s.Position, t.Position); bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

// AttackDirection returns the side of target stack id can strike from. The side
// facing the attacker is tried first, then the other five clockwise.
func AttackDirection(e *battle.Engine, id battle.StackID, target hex.Coord) (hex.Direction, bool) {
	s, ok := e.Stack(id)
	if !ok {
		return hex.Invalid, false
	}
	first := hex.DirectionTo(target, s.Position)
	if first == hex.Invalid {
		return hex.Invalid, false
	}
	for step := 0; step < 6; step++ {
		dir := hex.RotateClockwise(first, step)
		if e.CanStageAt(id, hex.OneStep(target, dir, false)) {
			return dir, true
		}
	}
	return hex.Invalid, false
}

// Approach returns the reachable tile nearest target, provided it is strictly
// closer than where stack id stands now.
func Approach(e *battle.Engine, id battle.StackID, target hex.Coord) (hex.Coord, bool) {
	s, ok := e.Stack(id)
	if !ok {
		return hex.Coord{}, false
	}
	best := s.Position
	bestDist := hex.Distance(s.Position, target)
	found := false
	for _, tile := range e.ReachableTiles(id) {
		if d := hex.Distance(tile, target); d < bestDist {
			best, bestDist, found = tile, d, true
		}
	}
	return best, found
}

func failed(e *battle.Engine, id battle.StackID, s *army.TroopStack, kind battle.ActionKind, err battle.ErrorKind) battle.ActionResult {
	return battle.ActionResult{
		Kind:        kind,
		Stack:       id,
		Error:       err,
		From:        s.Position,
		To:          s.Position,
		BattleEnded: e.IsOver(),
	}
}
