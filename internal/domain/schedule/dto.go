package schedule

import (
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/pkg/validator"
)

type CreateShiftScheduleRequest struct {
	EmployeeID         string   `json:"employee_id"`
	WorkTimeID         int64    `json:"work_time_id"`
	EffectiveDate      string   `json:"effective_date"`
	EndDate            *string  `json:"end_date,omitempty"`
	Recurrence         string   `json:"recurrence,omitempty"`
	RecurrenceInterval int      `json:"recurrence_interval,omitempty"`
	DaysOfWeek         []string `json:"days_of_week,omitempty"` // "monday".."sunday"
	Priority           int      `json:"priority"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (r *CreateShiftScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.WorkTimeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "work_time_id", Message: "is required"})
	}
	effective, ok := validator.IsValidDate(r.EffectiveDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if end.Before(effective) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not precede effective_date"})
		}
	}
	if r.Recurrence != "" && !validator.IsInSlice(r.Recurrence, RecurrenceValues) {
		errs = append(errs, validator.ValidationError{Field: "recurrence", Message: "must be one of none, daily, weekly, monthly"})
	}
	if r.RecurrenceInterval < 0 {
		errs = append(errs, validator.ValidationError{Field: "recurrence_interval", Message: "must not be negative"})
	}
	for _, name := range r.DaysOfWeek {
		if _, ok := weekdayNames[name]; !ok {
			errs = append(errs, validator.ValidationError{Field: "days_of_week", Message: "contains an unknown weekday: " + name})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts the request into a schedule row. Validate must have
// passed already; date parsing is assumed to succeed.
func (r *CreateShiftScheduleRequest) ToEntity() ShiftSchedule {
	effective, _ := time.Parse("2006-01-02", r.EffectiveDate)

	var endDate *time.Time
	if r.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *r.EndDate)
		if err == nil {
			endDate = &parsed
		}
	}

	recurrence := RecurrenceNone
	if r.Recurrence != "" {
		recurrence = Recurrence(r.Recurrence)
	}

	var days []time.Weekday
	for _, name := range r.DaysOfWeek {
		days = append(days, weekdayNames[name])
	}

	return ShiftSchedule{
		EmployeeID:         r.EmployeeID,
		WorkTimeID:         r.WorkTimeID,
		EffectiveDate:      effective,
		EndDate:            endDate,
		Recurrence:         recurrence,
		RecurrenceInterval: r.RecurrenceInterval,
		DaysOfWeek:         days,
		Priority:           r.Priority,
		IsActive:           true,
	}
}

type ShiftScheduleResponse struct {
	ID                 int64    `json:"id"`
	EmployeeID         string   `json:"employee_id"`
	WorkTimeID         int64    `json:"work_time_id"`
	EffectiveDate      string   `json:"effective_date"`
	EndDate            *string  `json:"end_date,omitempty"`
	Recurrence         string   `json:"recurrence"`
	RecurrenceInterval int      `json:"recurrence_interval"`
	DaysOfWeek         []string `json:"days_of_week,omitempty"`
	Priority           int      `json:"priority"`
	IsActive           bool     `json:"is_active"`
	Merged             bool     `json:"merged,omitempty"`
}

type ResolvedShiftResponse struct {
	Date         string  `json:"date"`
	WorkTimeID   int64   `json:"work_time_id"`
	WorkTimeName string  `json:"work_time_name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	TotalMinutes int     `json:"total_minutes"`
	ScheduleID   *int64  `json:"schedule_id,omitempty"`
	FromDefault  bool    `json:"from_default"`
	RestDay      bool    `json:"rest_day"`
}

func NewShiftScheduleResponse(s ShiftSchedule, merged bool) ShiftScheduleResponse {
	var endDate *string
	if s.EndDate != nil {
		str := s.EndDate.Format("2006-01-02")
		endDate = &str
	}

	var days []string
	for _, d := range s.DaysOfWeek {
		days = append(days, weekdayName(d))
	}

	return ShiftScheduleResponse{
		ID:                 s.ID,
		EmployeeID:         s.EmployeeID,
		WorkTimeID:         s.WorkTimeID,
		EffectiveDate:      s.EffectiveDate.Format("2006-01-02"),
		EndDate:            endDate,
		Recurrence:         string(s.Recurrence),
		RecurrenceInterval: s.RecurrenceInterval,
		DaysOfWeek:         days,
		Priority:           s.Priority,
		IsActive:           s.IsActive,
		Merged:             merged,
	}
}

func weekdayName(d time.Weekday) string {
	for name, day := range weekdayNames {
		if day == d {
			return name
		}
	}
	return ""
}
