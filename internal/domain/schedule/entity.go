package schedule

import "time"

// WorkTime is an immutable shift-window reference row. Clock fields carry
// only the time of day; the date part is the zero date.
type WorkTime struct {
	ID           int64
	Name         string
	StartTime    time.Time
	EndTime      time.Time
	TotalMinutes int
	IsDefault    bool
	ValidIn      *time.Time // earliest accepted clock-in
	ValidOut     *time.Time // latest accepted clock-out
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

var RecurrenceValues = []string{
	string(RecurrenceNone),
	string(RecurrenceDaily),
	string(RecurrenceWeekly),
	string(RecurrenceMonthly),
}

type ShiftSchedule struct {
	ID                 int64
	EmployeeID         string
	WorkTimeID         int64
	EffectiveDate      time.Time
	EndDate            *time.Time // nil = open-ended
	Recurrence         Recurrence
	RecurrenceInterval int
	DaysOfWeek         []time.Weekday // empty = every day
	Priority           int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	WorkTime *WorkTime
}

// ResolvedShift is the outcome of resolving (employee, date) against the
// schedule arena. Schedule is nil when the system default work time was used.
type ResolvedShift struct {
	WorkTime    WorkTime
	Schedule    *ShiftSchedule
	FromDefault bool
}
