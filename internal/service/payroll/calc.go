package payroll

import (
	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
	hoursPerDay   = decimal.NewFromInt(8)
	minutesPerHr  = decimal.NewFromInt(60)
	two           = decimal.NewFromInt(2)
)

// HourlyRate derives the employee's hourly rate. Monthly-salaried employees
// annualize the monthly rate over 365 days of 8 hours; daily-salaried
// employees divide the basic daily salary by 8.
func HourlyRate(salaryType employee.SalaryType, monthlyRate, basicDaily decimal.Decimal) decimal.Decimal {
	if salaryType == employee.SalaryTypeMonthly {
		return monthlyRate.Mul(monthsPerYear).Div(daysPerYear).Div(hoursPerDay)
	}
	return basicDaily.Div(hoursPerDay)
}

// LateDeduction charges the hourly rate for every late hour, 2dp.
func LateDeduction(hourlyRate, lateHours decimal.Decimal) decimal.Decimal {
	return hourlyRate.Mul(lateHours).Round(2)
}

// HalfPeriodBase is the pre-deduction gross baseline for one cutoff:
// half the monthly rate for monthly-salaried employees, otherwise the
// basic daily salary times credited days unless a previously stored total
// salary takes precedence.
func HalfPeriodBase(salaryType employee.SalaryType, monthlyRate, basicDaily, totalDays decimal.Decimal, storedTotal *decimal.Decimal) decimal.Decimal {
	if salaryType == employee.SalaryTypeMonthly {
		return monthlyRate.Div(two)
	}
	if storedTotal != nil && !storedTotal.IsZero() {
		return *storedTotal
	}
	return basicDaily.Mul(totalDays)
}

// NetBeforeExtras floors the base minus the late deduction at zero.
func NetBeforeExtras(base, lateDeduction decimal.Decimal) decimal.Decimal {
	net := base.Sub(lateDeduction)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net.Round(2)
}

// LateHours sums per-day lateness: positive (net_work − actual_rendered)
// minutes converted to hours.
func LateHours(rows []attendance.Attendance) decimal.Decimal {
	totalMinutes := 0
	for _, row := range rows {
		totalMinutes += row.LateMinutesComputed()
	}
	return decimal.NewFromInt(int64(totalMinutes)).Div(minutesPerHr)
}

// RenderedHours sums rendered minutes over the cutoff, in hours.
func RenderedHours(rows []attendance.Attendance) decimal.Decimal {
	totalMinutes := 0
	for _, row := range rows {
		totalMinutes += row.RenderedMinutes
	}
	return decimal.NewFromInt(int64(totalMinutes)).Div(minutesPerHr)
}

// CreditedDays counts days with any rendered time plus paid leave days.
func CreditedDays(rows []attendance.Attendance, paidLeaveDays float64) decimal.Decimal {
	days := 0
	for _, row := range rows {
		if row.RenderedMinutes > 0 {
			days++
		}
	}
	return decimal.NewFromInt(int64(days)).Add(decimal.NewFromFloat(paidLeaveDays))
}
