package simulation

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/game/battle"
)

// EventFields flattens an event into log fields. Failed actions carry only
// the error; moves omit the attack fields.
func EventFields(ev Event) []zap.Field {
	r := ev.Result
	fields := []zap.Field{
		zap.Int("turn", ev.Turn),
		zap.Int("round", ev.Round),
		zap.Int("stack", int(r.Stack)),
		zap.Stringer("kind", r.Kind),
		zap.Bool("success", r.Success),
	}
	if !r.Success {
		return append(fields, zap.Stringer("error", r.Error))
	}
	fields = append(fields,
		zap.Stringer("from", r.From),
		zap.Stringer("to", r.To),
		zap.Bool("morale", r.Morale),
	)
	if r.Kind != battle.ActionMove {
		fields = append(fields,
			zap.Stringer("target", r.Target),
			zap.Bool("luck", r.Luck),
			zap.Int("damage", r.Damage),
			zap.Int("perished", r.Perished),
		)
	}
	if r.Defeated {
		fields = append(fields, zap.Int("defeated_stack", int(r.DefeatedStack)))
	}
	return fields
}

// TurnLogger returns a Listener that logs every turn at info level.
func TurnLogger(logger *zap.Logger) Listener {
	return func(ev Event) {
		logger.Info("turn", EventFields(ev)...)
	}
}
