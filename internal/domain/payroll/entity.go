package payroll

import (
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
	"github.com/centraljuan/payroll-backend-go/internal/domain/loan"
	"github.com/centraljuan/payroll-backend-go/internal/domain/retro"
	"github.com/shopspring/decimal"
)

// PayrollRecord is the system-of-record for one (employee, cutoff).
type PayrollRecord struct {
	ID         string
	EmployeeID string
	DateFrom   time.Time
	DateUntil  time.Time

	BasicSalary        decimal.Decimal // basic daily salary snapshot
	TotalDays          decimal.Decimal
	TotalRenderedHours decimal.Decimal
	TotalLateHours     decimal.Decimal
	LateDeduction      decimal.Decimal

	HalfMonthSalary      decimal.Decimal
	TotalSalaryAfterLate decimal.Decimal

	SSSShare        decimal.Decimal
	PhilHealthShare decimal.Decimal
	PagibigShare    decimal.Decimal

	LoanDeduction       decimal.Decimal  // scheduled
	LoanDeductionActual *decimal.Decimal // posted, nil = not yet reconciled

	TotalRetroApplied decimal.Decimal
	TotalAllowances   decimal.Decimal
	TotalRewards      decimal.Decimal

	GrossPay  decimal.Decimal
	NetSalary decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Nested audit detail, persisted as JSON alongside the record.
	AttendanceDetail []attendance.DaySummary
	LeaveDetail      leave.AttributionResult
	LoanDetail       loan.EmployeeLoanResult
	RetroDetail      []retro.AdjustmentResponse
	Warnings         []string

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// StatutoryShares is the per-cutoff contribution snapshot. Values come from
// the upstream contribution tables with per-employee overrides taking
// precedence; non-regular employee types are zeroed by the aggregator.
type StatutoryShares struct {
	SSS        decimal.Decimal
	PhilHealth decimal.Decimal
	Pagibig    decimal.Decimal
}

func (s StatutoryShares) Total() decimal.Decimal {
	return s.SSS.Add(s.PhilHealth).Add(s.Pagibig)
}

// Zeroed returns an all-zero share set, used for exempt employee types.
func (s StatutoryShares) Zeroed() StatutoryShares {
	return StatutoryShares{SSS: decimal.Zero, PhilHealth: decimal.Zero, Pagibig: decimal.Zero}
}
