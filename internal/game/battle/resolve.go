package battle

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Do validates and resolves one action request.
//
// Validation failures are reported in the result and leave the battle untouched.
// Postcondition: result.Success == (result.Error == ErrorNone); result.BattleEnded
// reflects IsOver() after the action.
func (e *Engine) Do(req ActionRequest) ActionResult {
	var res ActionResult
	s, ok := e.Stack(req.Stack)
	if !ok {
		res = ActionResult{Kind: req.Kind, Stack: req.Stack, Target: req.Target, Error: ErrorInvalidStack}
	} else {
		switch req.Kind {
		case ActionMove:
			res = e.move(req, s)
		case ActionMeleeAttack:
			res = e.melee(req, s)
		case ActionRangedAttack:
			res = e.shoot(req, s)
		default:
			res = e.outcome(req, s, ErrorNotImplemented)
		}
	}
	res.Success = res.Error == ErrorNone
	res.BattleEnded = e.IsOver()
	if res.Success {
		e.started = true
	}

	e.logger.Debug("action resolved",
		zap.Int("stack", int(req.Stack)),
		zap.Stringer("kind", req.Kind),
		zap.Bool("success", res.Success),
		zap.Stringer("error", res.Error),
		zap.Stringer("from", res.From),
		zap.Stringer("to", res.To),
		zap.Bool("luck", res.Luck),
		zap.Bool("morale", res.Morale),
		zap.Int("damage", res.Damage),
	)
	return res
}

// Move requests that stack id walk to target.
func (e *Engine) Move(id StackID, target hex.Coord) ActionResult {
	return e.Do(ActionRequest{Stack: id, Target: target, Kind: ActionMove})
}

// MeleeAttack requests that stack id strike the enemy on target from side dir.
func (e *Engine) MeleeAttack(id StackID, target hex.Coord, dir hex.Direction) ActionResult {
	return e.Do(ActionRequest{Stack: id, Target: target, Kind: ActionMeleeAttack, Direction: dir})
}

// RangedAttack requests that stack id shoot the enemy on target.
func (e *Engine) RangedAttack(id StackID, target hex.Coord) ActionResult {
	return e.Do(ActionRequest{Stack: id, Target: target, Kind: ActionRangedAttack})
}

// outcome builds a result for req with the acting stack still on its tile.
func (e *Engine) outcome(req ActionRequest, s *army.TroopStack, kind ErrorKind) ActionResult {
	return ActionResult{
		Kind:   req.Kind,
		Stack:  req.Stack,
		Error:  kind,
		From:   s.Position,
		To:     s.Position,
		Target: req.Target,
	}
}

func (e *Engine) move(req ActionRequest, s *army.TroopStack) ActionResult {
	if !e.IsAchievable(req.Stack, req.Target) {
		return e.outcome(req, s, ErrorTooFar)
	}
	if other, taken := e.StackAt(req.Target); taken {
		if e.stacks[other].stack.Side == s.Side {
			return e.outcome(req, s, ErrorOccupiedByAlly)
		}
		return e.outcome(req, s, ErrorHexOccupied)
	}

	res := e.outcome(req, s, ErrorNone)
	s.Position = req.Target
	res.To = s.Position
	res.Morale = e.roller.Check("morale", e.opts.MoraleProbability).Success
	return res
}

func (e *Engine) melee(req ActionRequest, s *army.TroopStack) ActionResult {
	if !req.Direction.Valid() {
		return e.outcome(req, s, ErrorInvalidTarget)
	}
	defender, ok := e.enemyAt(req.Target, s.Side)
	if !ok {
		return e.outcome(req, s, ErrorInvalidTarget)
	}
	staging := hex.OneStep(req.Target, req.Direction, false)
	if !e.CanStageAt(req.Stack, staging) {
		return e.outcome(req, s, ErrorInvalidTarget)
	}

	res := e.outcome(req, s, ErrorNone)
	s.Position = staging
	res.To = s.Position
	res.Morale = e.roller.Check("morale", e.opts.MoraleProbability).Success
	e.strike(req.Stack, defender, &res)
	return res
}

func (e *Engine) shoot(req ActionRequest, s *army.TroopStack) ActionResult {
	defender, ok := e.enemyAt(req.Target, s.Side)
	if !ok {
		return e.outcome(req, s, ErrorInvalidTarget)
	}
	if !s.Type.IsRanged() {
		return e.outcome(req, s, ErrorNotImplemented)
	}

	res := e.outcome(req, s, ErrorNone)
	res.Morale = e.roller.Check("morale", e.opts.MoraleProbability).Success
	e.strike(req.Stack, defender, &res)
	return res
}

// enemyAt returns the living stack on pos when it opposes side.
func (e *Engine) enemyAt(pos hex.Coord, side army.Side) (StackID, bool) {
	id, ok := e.StackAt(pos)
	if !ok || e.stacks[id].stack.Side == side {
		return 0, false
	}
	return id, true
}

// strike rolls luck, applies damage from attacker to defender and removes the
// defender when its last unit falls. Melee and ranged attacks share it.
func (e *Engine) strike(attacker, defender StackID, res *ActionResult) {
	att, def := e.stacks[attacker].stack, e.stacks[defender].stack
	lucky := e.roller.Check("luck", e.opts.LuckProbability).Success
	report := ResolveDamage(att, def, lucky)

	res.Luck = report.Lucky
	res.Damage = report.Base
	res.Perished = report.Perished
	if !def.IsAlive() {
		e.remove(defender)
		res.Defeated = true
		res.DefeatedStack = defender
	}
}
