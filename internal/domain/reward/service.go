package reward

import (
	"context"
	"time"
)

type RewardService interface {
	// Evaluate resolves rewards and allowances for one employee and cutoff.
	// Journal entries, when present, are authoritative and skip rule
	// evaluation entirely.
	Evaluate(ctx context.Context, employeeID string, from, until time.Time, evalCtx EvaluationContext) (EvaluationResult, error)
}
