package payroll

import (
	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
	"github.com/centraljuan/payroll-backend-go/internal/domain/loan"
	"github.com/centraljuan/payroll-backend-go/internal/domain/retro"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	DateFrom    string   `json:"date_from"`
	DateUntil   string   `json:"date_until"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty = all active employees
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, _, ok := validator.IsValidDateRange(r.DateFrom, r.DateUntil); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date_from/date_until must be a valid date range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	DateFrom   string `json:"date_from"`
	DateUntil  string `json:"date_until"`

	BasicSalary        decimal.Decimal `json:"basic_salary"`
	TotalDays          decimal.Decimal `json:"total_days"`
	TotalRenderedHours decimal.Decimal `json:"total_rendered_hours"`
	TotalLateHours     decimal.Decimal `json:"total_late_hours"`
	LateDeduction      decimal.Decimal `json:"late_deduction"`

	HalfMonthSalary      decimal.Decimal `json:"half_month_salary"`
	TotalSalaryAfterLate decimal.Decimal `json:"total_salary_after_late"`

	SSSShare        decimal.Decimal `json:"sss_share"`
	PhilHealthShare decimal.Decimal `json:"philhealth_share"`
	PagibigShare    decimal.Decimal `json:"pagibig_share"`

	LoanDeduction       decimal.Decimal  `json:"loan_deduction"`
	LoanDeductionActual *decimal.Decimal `json:"loan_deduction_actual,omitempty"`

	TotalRetroApplied decimal.Decimal `json:"total_retro_applied"`
	TotalAllowances   decimal.Decimal `json:"total_allowances"`
	TotalRewards      decimal.Decimal `json:"total_rewards"`

	GrossPay  decimal.Decimal `json:"gross_pay"`
	NetSalary decimal.Decimal `json:"net_salary"`

	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`

	AttendanceDetail []attendance.DaySummary    `json:"attendance_detail,omitempty"`
	LeaveDetail      leave.AttributionResult    `json:"leave_detail"`
	LoanDetail       loan.EmployeeLoanResult    `json:"loan_detail"`
	RetroDetail      []retro.AdjustmentResponse `json:"retro_detail,omitempty"`
	Warnings         []string                   `json:"warnings,omitempty"`
}

// EmployeeFailure records one employee's sub-computation failing without
// aborting the batch for everyone else.
type EmployeeFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type GeneratePayrollResponse struct {
	Records  []PayrollRecordResponse `json:"records"`
	Failures []EmployeeFailure       `json:"failures,omitempty"`
	// Warning set when the non-fatal period-summary upsert failed after the
	// payroll rows were committed.
	SummaryWarning *string `json:"summary_warning,omitempty"`
}

type PayrollFilter struct {
	EmployeeID *string
	DateFrom   *string // exact cutoff match, YYYY-MM-DD
	DateUntil  *string
}
