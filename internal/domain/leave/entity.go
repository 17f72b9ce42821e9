package leave

import "time"

type LeaveType struct {
	ID     int64
	Name   string
	IsPaid bool
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

type LeaveRequest struct {
	ID          int64
	EmployeeID  string
	LeaveTypeID int64
	DateFrom    time.Time
	DateUntil   time.Time
	Status      RequestStatus
	CreatedAt   time.Time

	// Joined fields
	LeaveType *LeaveType
	Balance   *LeaveBalance
}

// LeaveBalance tracks consumption per (employee, leave type).
type LeaveBalance struct {
	ID          int64
	EmployeeID  string
	LeaveTypeID int64
	Limit       float64
	Used        float64
	Remaining   float64
}

// OverlapDays returns the inclusive calendar-day length of the intersection
// between the request and [from, until], zero when disjoint.
func (r LeaveRequest) OverlapDays(from, until time.Time) int {
	start := dayOf(r.DateFrom)
	if cutoffStart := dayOf(from); cutoffStart.After(start) {
		start = cutoffStart
	}
	end := dayOf(r.DateUntil)
	if cutoffEnd := dayOf(until); cutoffEnd.Before(end) {
		end = cutoffEnd
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// CoversDate reports whether the request spans the given calendar day.
func (r LeaveRequest) CoversDate(date time.Time) bool {
	day := dayOf(date)
	return !day.Before(dayOf(r.DateFrom)) && !day.After(dayOf(r.DateUntil))
}

// IsPaid resolves the paid flag through the joined leave type.
func (r LeaveRequest) IsPaid() bool {
	return r.LeaveType != nil && r.LeaveType.IsPaid
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
