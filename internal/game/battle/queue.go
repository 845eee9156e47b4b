package battle

import "go.uber.org/zap"

// TurnOrder returns a copy of the turn queue.
func (e *Engine) TurnOrder() []StackID {
	out := make([]StackID, len(e.queue))
	copy(out, e.queue)
	return out
}

// CurrentStack returns the stack whose turn it is.
//
// Postcondition: ok is false only when no stack is alive.
func (e *Engine) CurrentStack() (StackID, bool) {
	if len(e.queue) == 0 {
		return 0, false
	}
	return e.queue[e.turn], true
}

// AdvanceTurn moves the cursor to the next stack, starting a new round when it wraps.
func (e *Engine) AdvanceTurn() {
	if len(e.queue) == 0 {
		return
	}
	e.turn++
	if e.turn >= len(e.queue) {
		e.turn = 0
		e.round++
		e.logger.Debug("round started", zap.Int("round", e.round))
	}
}

// Round returns the 1-based round number.
func (e *Engine) Round() int { return e.round }

// remove takes a defeated stack out of its army and the turn queue.
//
// Postcondition: the stack is unknown to Stack, StackAt, Enemies and TurnOrder;
// the cursor still names the same stack when that stack survives, and is
// clamped to the last queue index otherwise.
func (e *Engine) remove(id StackID) {
	en := &e.stacks[id]
	if !en.alive {
		return
	}
	en.alive = false
	en.owner.RemoveTroopAt(en.owner.IndexOf(en.stack))

	for i, q := range e.queue {
		if q != id {
			continue
		}
		e.queue = append(e.queue[:i], e.queue[i+1:]...)
		if i < e.turn {
			e.turn--
		}
		break
	}
	if e.turn >= len(e.queue) {
		e.turn = max(len(e.queue)-1, 0)
	}

	e.logger.Info("stack defeated",
		zap.Int("stack", int(id)),
		zap.String("unit", en.stack.Type.ID),
		zap.Stringer("side", en.stack.Side),
	)
}
