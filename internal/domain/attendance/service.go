package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// EnsurePeriod backfills a blank attendance row for every scheduled
	// workday in the inclusive range that has none. Idempotent: re-running
	// inserts nothing. Rest days and unresolvable days are skipped.
	EnsurePeriod(ctx context.Context, employeeID string, from, until time.Time) (ReconcileResponse, error)

	// IsEligibleDailyMinimum reports whether every non-Sunday workday in the
	// range rendered at least the configured daily hours, with approved paid
	// leave and holidays excusing a short day. One violating day disqualifies
	// the whole period.
	IsEligibleDailyMinimum(ctx context.Context, employeeID string, from, until time.Time) (bool, error)
}
