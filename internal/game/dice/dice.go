// Package dice provides the randomness abstraction and probability checks used
// by the battle engine.
package dice

import (
	"fmt"
	"math"
)

// ChanceScale is the resolution of a probability check: a check with
// probability p succeeds when Intn(ChanceScale) < round(p*ChanceScale).
const ChanceScale = 10000

// Source is the randomness provider for checks.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// CheckResult holds the audit trail of one probability check.
//
// Postcondition: Success == (Roll < Threshold()).
type CheckResult struct {
	Label       string  // what was rolled for, e.g. "luck"
	Probability float64 // requested probability, clamped to [0, 1]
	Roll        int     // raw value in [0, ChanceScale)
	Success     bool
}

// Threshold returns the number of rolls out of ChanceScale that succeed.
func (r CheckResult) Threshold() int {
	return threshold(r.Probability)
}

// String returns a human-readable audit string in the format:
//
//	"luck p=0.15 → 1234/10000 = success"
//
// Precondition: r.Label is non-empty.
func (r CheckResult) String() string {
	if r.Label == "" {
		panic("dice: CheckResult.String() precondition violated: Label must be non-empty")
	}
	verdict := "failure"
	if r.Success {
		verdict = "success"
	}
	return fmt.Sprintf("%s p=%.2f → %d/%d = %s", r.Label, r.Probability, r.Roll, ChanceScale, verdict)
}

// Check rolls once against probability p using src.
//
// A roll is always consumed, so the sequence of draws from src does not depend on p.
// Postcondition: p <= 0 never succeeds; p >= 1 always succeeds.
func Check(label string, p float64, src Source) CheckResult {
	p = math.Max(0, math.Min(1, p))
	roll := src.Intn(ChanceScale)
	return CheckResult{
		Label:       label,
		Probability: p,
		Roll:        roll,
		Success:     roll < threshold(p),
	}
}

func threshold(p float64) int {
	return int(math.Round(p * ChanceScale))
}
