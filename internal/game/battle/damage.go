package battle

import "github.com/cory-johannsen/hexbattle/internal/game/army"

// DamageReport records the arithmetic of one resolved attack.
type DamageReport struct {
	// Base is the damage dealt: attacker amount times per-unit damage, doubled on luck.
	Base int
	// Carried is the health the defender's front unit had already lost.
	Carried int
	// Total is Base + Carried.
	Total    int
	Perished int
	Lucky    bool
}

// ResolveDamage applies one attack from attacker to defender.
//
// The defender's health is one pool drained a unit at a time: damage plus the
// front unit's missing health is divided by max health, whole units perish and
// the remainder is left as missing health on the new front unit.
//
// Precondition: both stacks are alive and have non-nil types.
// Postcondition: defender.CurrentAmount >= 0; a dead defender has CurrentHealth == 0;
// report.Perished never exceeds the defender's amount before the attack.
func ResolveDamage(attacker, defender *army.TroopStack, lucky bool) DamageReport {
	base := attacker.CurrentAmount * attacker.Type.Damage
	if lucky {
		base *= 2
	}
	maxHealth := defender.Type.MaxHealth
	carried := maxHealth - defender.CurrentHealth
	total := base + carried

	perished := total / maxHealth
	before := defender.CurrentAmount
	defender.CurrentAmount -= perished
	defender.CurrentHealth = maxHealth - total%maxHealth

	if defender.CurrentAmount <= 0 {
		defender.CurrentAmount = 0
		defender.CurrentHealth = 0
		perished = before
	}
	return DamageReport{
		Base:     base,
		Carried:  carried,
		Total:    total,
		Perished: perished,
		Lucky:    lucky,
	}
}
