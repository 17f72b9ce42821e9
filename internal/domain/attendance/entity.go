package attendance

import "time"

// Attendance is unique per (employee, date). Placeholder rows are inserted
// by the reconciler; the time-clock collaborators fill the punches in.
type Attendance struct {
	ID               int64
	EmployeeID       string
	Date             time.Time
	MorningIn        *time.Time
	MorningOut       *time.Time
	AfternoonIn      *time.Time
	AfternoonOut     *time.Time
	RenderedMinutes  int
	LateMinutes      int
	NetWorkMinutes   int
	ActualMinutes    int
	OvertimeApproved bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RenderedHours converts the rendered minutes of the day to hours.
func (a Attendance) RenderedHours() float64 {
	return float64(a.RenderedMinutes) / 60.0
}

// LateMinutesComputed derives lateness from the scheduled net work minutes
// against what was actually rendered. Negative differences mean the
// employee covered the shift and count as zero.
func (a Attendance) LateMinutesComputed() int {
	diff := a.NetWorkMinutes - a.ActualMinutes
	if diff < 0 {
		return 0
	}
	return diff
}
