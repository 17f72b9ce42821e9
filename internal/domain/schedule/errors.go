package schedule

import "errors"

var (
	ErrWorkTimeNotFound      = errors.New("work time not found")
	ErrShiftScheduleNotFound = errors.New("shift schedule not found")
	ErrScheduleConflict      = errors.New("shift schedule conflicts with an existing schedule")
	ErrNoDefaultWorkTime     = errors.New("no default work time configured")
)
