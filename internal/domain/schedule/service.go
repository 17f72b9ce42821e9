package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	// Resolve returns the shift window governing (employee, date). Falls
	// back to the default work time when no schedule matches.
	Resolve(ctx context.Context, employeeID string, date time.Time) (ResolvedShift, error)
	CreateSchedule(ctx context.Context, req CreateShiftScheduleRequest) (ShiftScheduleResponse, error)
}
