package battle

import "github.com/cory-johannsen/hexbattle/internal/game/hex"

// ActionKind identifies what a stack attempts on its turn.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionMeleeAttack
	ActionRangedAttack
)

// String returns the human-readable name of the ActionKind.
func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionMeleeAttack:
		return "melee-attack"
	case ActionRangedAttack:
		return "ranged-attack"
	default:
		return "unknown"
	}
}

// ErrorKind classifies why an action was refused. The zero value means success.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	// ErrorTooFar: the destination is off the field or beyond the stack's speed.
	ErrorTooFar
	// ErrorOccupiedByAlly: a stack of the mover's own side holds the destination.
	ErrorOccupiedByAlly
	// ErrorHexOccupied: any stack holds the destination.
	ErrorHexOccupied
	// ErrorInvalidTarget: no enemy at the target, or the staging hex is unusable.
	ErrorInvalidTarget
	// ErrorNotImplemented: the stack cannot perform the requested kind of action.
	ErrorNotImplemented
	// ErrorInvalidStack: the acting stack is not alive in this battle.
	ErrorInvalidStack
	// ErrorNoEnemies, ErrorNoTarget and ErrorNoValidMove are raised by AI controllers.
	ErrorNoEnemies
	ErrorNoTarget
	ErrorNoValidMove
)

// String returns the stable identifier of the ErrorKind.
func (e ErrorKind) String() string {
	switch e {
	case ErrorNone:
		return "none"
	case ErrorTooFar:
		return "too-far"
	case ErrorOccupiedByAlly:
		return "occupied-by-ally"
	case ErrorHexOccupied:
		return "hex-occupied"
	case ErrorInvalidTarget:
		return "invalid-target"
	case ErrorNotImplemented:
		return "not-implemented"
	case ErrorInvalidStack:
		return "invalid-stack"
	case ErrorNoEnemies:
		return "no-enemies"
	case ErrorNoTarget:
		return "no-target"
	case ErrorNoValidMove:
		return "no-valid-move"
	default:
		return "unknown"
	}
}

// ActionRequest describes an attempted action.
type ActionRequest struct {
	Stack  StackID
	Target hex.Coord
	Kind   ActionKind
	// Direction names the side of the target a melee attacker strikes from.
	// Ignored by moves and ranged attacks.
	Direction hex.Direction
}

// ActionResult describes the outcome of an ActionRequest.
//
// Invariant: Success == (Error == ErrorNone).
type ActionResult struct {
	Kind    ActionKind
	Stack   StackID
	Success bool
	Error   ErrorKind
	// From and To are the acting stack's position before and after the action.
	From   hex.Coord
	To     hex.Coord
	Target hex.Coord
	Luck   bool
	Morale bool
	// Damage is the damage dealt by an attack, luck included.
	Damage   int
	Perished int
	// Defeated is true when the attack removed the defending stack.
	Defeated      bool
	DefeatedStack StackID
	BattleEnded   bool
}
