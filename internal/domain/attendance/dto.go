package attendance

import (
	"github.com/centraljuan/payroll-backend-go/internal/pkg/validator"
)

type ReconcileRequest struct {
	EmployeeID string `json:"employee_id"`
	DateFrom   string `json:"date_from"`
	DateUntil  string `json:"date_until"`
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, _, ok := validator.IsValidDateRange(r.DateFrom, r.DateUntil); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date_from/date_until must be a valid date range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReconcileResponse struct {
	EmployeeID    string   `json:"employee_id"`
	DateFrom      string   `json:"date_from"`
	DateUntil     string   `json:"date_until"`
	InsertedCount int      `json:"inserted_count"`
	SkippedDates  []string `json:"skipped_dates,omitempty"` // rest days and unresolvable days
}

// DaySummary is the per-day attendance detail nested into payroll records.
type DaySummary struct {
	Date            string  `json:"date"`
	RenderedMinutes int     `json:"rendered_minutes"`
	LateMinutes     int     `json:"late_minutes"`
	NetWorkMinutes  int     `json:"net_work_minutes"`
	ActualMinutes   int     `json:"actual_minutes"`
	RenderedHours   float64 `json:"rendered_hours"`
}
