// Package simulation drives a battle to completion by letting an AI act for
// every stack in turn.
package simulation

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/battle"
)

// ErrTurnLimit is returned when a battle is still undecided after MaxTurns actions.
var ErrTurnLimit = errors.New("simulation: turn limit reached")

// Actor chooses and submits one action for a stack.
type Actor interface {
	Act(e *battle.Engine, id battle.StackID) battle.ActionResult
}

// Event is published to the Listener after every action.
type Event struct {
	Turn   int
	Round  int
	Result battle.ActionResult
}

// Listener receives every Event in order. It runs on the Run goroutine.
type Listener func(Event)

// Options controls pacing and the stopping rule.
type Options struct {
	// MaxTurns bounds the number of actions before Run gives up.
	MaxTurns int
	// TurnDelay is the pause between actions; zero runs flat out.
	TurnDelay time.Duration
}

// Summary describes how a run ended.
type Summary struct {
	BattleID string
	// Winner is meaningful only when Decided is true.
	Winner  army.Side
	Decided bool
	Turns   int
	Rounds  int
}

// Runner plays one battle turn by turn.
//
// Invariant: engine and actor are non-nil; opts.MaxTurns > 0.
type Runner struct {
	engine   *battle.Engine
	actor    Actor
	logger   *zap.Logger
	opts     Options
	listener Listener
}

// NewRunner returns a Runner for e.
//
// Precondition: e and actor must not be nil; opts.MaxTurns must be > 0.
// A nil logger discards output; a nil listener drops events.
func NewRunner(e *battle.Engine, actor Actor, logger *zap.Logger, opts Options, listener Listener) *Runner {
	if e == nil {
		panic("simulation.NewRunner: engine must not be nil")
	}
	if actor == nil {
		panic("simulation.NewRunner: actor must not be nil")
	}
	if opts.MaxTurns <= 0 {
		panic("simulation.NewRunner: MaxTurns must be > 0")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if listener == nil {
		listener = func(Event) {}
	}
	return &Runner{
		engine:   e,
		actor:    actor,
		logger:   logger.With(zap.String("battle_id", e.ID())),
		opts:     opts,
		listener: listener,
	}
}

// Run plays turns until the battle ends, ctx is cancelled or the turn limit
// is hit. Each action completes before cancellation is observed.
//
// Postcondition: the returned Summary reflects every action taken; err is nil
// only when the battle ended, ctx.Err() on cancellation, ErrTurnLimit otherwise.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var tick <-chan time.Time
	if r.opts.TurnDelay > 0 {
		ticker := time.NewTicker(r.opts.TurnDelay)
		defer ticker.Stop()
		tick = ticker.C
	}

	turns := 0
	for !r.engine.IsOver() {
		if turns >= r.opts.MaxTurns {
			r.logger.Warn("turn limit reached", zap.Int("turns", turns))
			return r.summary(turns), ErrTurnLimit
		}
		if err := wait(ctx, tick); err != nil {
			r.logger.Info("simulation cancelled", zap.Int("turns", turns), zap.Error(err))
			return r.summary(turns), err
		}

		id, ok := r.engine.CurrentStack()
		if !ok {
			break
		}
		res := r.actor.Act(r.engine, id)
		turns++
		r.listener(Event{Turn: turns, Round: r.engine.Round(), Result: res})
		if res.BattleEnded {
			break
		}
		r.engine.AdvanceTurn()
	}

	s := r.summary(turns)
	r.logger.Info("simulation finished",
		zap.Int("turns", s.Turns),
		zap.Int("rounds", s.Rounds),
		zap.Bool("decided", s.Decided),
		zap.Stringer("winner", s.Winner),
	)
	return s, nil
}

func (r *Runner) summary(turns int) Summary {
	winner, decided := r.engine.Winner()
	return Summary{
		BattleID: r.engine.ID(),
		Winner:   winner,
		Decided:  decided,
		Turns:    turns,
		Rounds:   r.engine.Round(),
	}
}

// wait blocks for the next tick, or not at all when tick is nil.
func wait(ctx context.Context, tick <-chan time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tick == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}
