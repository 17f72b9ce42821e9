package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	ListByEmployeeRange(ctx context.Context, employeeID string, from, until time.Time) ([]Attendance, error)
	// InsertPlaceholder creates a blank row for (employee, date). Returns
	// false without error when the row already exists; the uniqueness
	// constraint makes concurrent reconciliation a no-op.
	InsertPlaceholder(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
