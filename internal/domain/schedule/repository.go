package schedule

import (
	"context"
	"time"
)

type WorkTimeRepository interface {
	GetByID(ctx context.Context, id int64) (WorkTime, error)
	// GetFallback returns the row flagged is_default, or the lowest-id row
	// when nothing is flagged. ErrNoDefaultWorkTime when the table is empty.
	GetFallback(ctx context.Context) (WorkTime, error)
}

type ShiftScheduleRepository interface {
	// GetActiveByEmployee returns the full candidate arena for one employee,
	// work times joined in. Resolution over dates happens in memory.
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]ShiftSchedule, error)
	// GetOverlapping returns active schedules for the employee whose date
	// range touches [from, until] (until nil = open-ended new schedule).
	GetOverlapping(ctx context.Context, employeeID string, from time.Time, until *time.Time) ([]ShiftSchedule, error)
	Create(ctx context.Context, s ShiftSchedule) (ShiftSchedule, error)
	UpdateDays(ctx context.Context, id int64, days []time.Weekday) (ShiftSchedule, error)
}
