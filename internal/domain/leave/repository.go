package leave

import (
	"context"
	"time"
)

// LeaveRepository is read-only to the engine: approvals happen upstream.
type LeaveRepository interface {
	// ListApprovedOverlapping returns approved requests whose range touches
	// [from, until], with leave type and balance joined in. The overlap test
	// matches requests whose either boundary falls inside the cutoff and
	// requests that fully contain it.
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, until time.Time) ([]LeaveRequest, error)
}
