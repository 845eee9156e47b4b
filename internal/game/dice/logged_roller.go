package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged probability checks.
// All checks are logged at debug level with label, probability, roll, and outcome.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each check to logger.
//
// Precondition: src must be non-nil. A nil logger discards output.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roller{src: src, logger: logger}
}

// Check rolls against probability p and logs the result at debug level.
//
// Postcondition: result logged; returns the CheckResult.
func (r *Roller) Check(label string, p float64) CheckResult {
	result := Check(label, p, r.src)
	r.logger.Debug("probability check",
		zap.String("label", result.Label),
		zap.Float64("probability", result.Probability),
		zap.Int("roll", result.Roll),
		zap.Bool("success", result.Success),
	)
	return result
}
