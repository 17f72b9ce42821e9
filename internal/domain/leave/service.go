package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// Attribute computes paid/unpaid leave days consumed within a cutoff,
	// each request capped by its remaining balance.
	Attribute(ctx context.Context, employeeID string, from, until time.Time) (AttributionResult, error)
}
