package payroll

import (
	"testing"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestHourlyRateMonthly(t *testing.T) {
	// 26000 * 12 / 365 / 8
	rate := HourlyRate(employee.SalaryTypeMonthly, dec("26000"), dec("0"))
	assert.True(t, rate.Round(4).Equal(dec("106.8493")), rate.String())
}

func TestHourlyRateDaily(t *testing.T) {
	rate := HourlyRate(employee.SalaryTypeDaily, dec("0"), dec("800"))
	assert.True(t, rate.Equal(dec("100")), rate.String())
}

func TestLateDeductionTwoHoursOnMonthlyRate(t *testing.T) {
	rate := HourlyRate(employee.SalaryTypeMonthly, dec("26000"), dec("0"))
	deduction := LateDeduction(rate, dec("2"))
	assert.True(t, deduction.Equal(dec("213.70")), deduction.String())
}

func TestHalfPeriodBase(t *testing.T) {
	half := HalfPeriodBase(employee.SalaryTypeMonthly, dec("26000"), dec("0"), dec("11"), nil)
	assert.True(t, half.Equal(dec("13000")), half.String())

	daily := HalfPeriodBase(employee.SalaryTypeDaily, dec("0"), dec("800"), dec("11"), nil)
	assert.True(t, daily.Equal(dec("8800")), daily.String())

	stored := dec("9150.00")
	fromStored := HalfPeriodBase(employee.SalaryTypeDaily, dec("0"), dec("800"), dec("11"), &stored)
	assert.True(t, fromStored.Equal(stored), fromStored.String())

	// A zero stored total falls back to the computed base.
	zero := decimal.Zero
	computed := HalfPeriodBase(employee.SalaryTypeDaily, dec("0"), dec("800"), dec("11"), &zero)
	assert.True(t, computed.Equal(dec("8800")), computed.String())
}

func TestNetBeforeExtras(t *testing.T) {
	net := NetBeforeExtras(dec("13000"), dec("213.70"))
	assert.True(t, net.Equal(dec("12786.30")), net.String())

	floored := NetBeforeExtras(dec("100"), dec("250"))
	assert.True(t, floored.IsZero(), "net never goes negative")
}

func attendanceRow(d time.Time, rendered, netWork, actual int) attendance.Attendance {
	return attendance.Attendance{
		Date:            d,
		RenderedMinutes: rendered,
		NetWorkMinutes:  netWork,
		ActualMinutes:   actual,
	}
}

func TestLateHours(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rows := []attendance.Attendance{
		attendanceRow(day, 420, 480, 420),                 // one hour short
		attendanceRow(day.AddDate(0, 0, 1), 480, 480, 480), // full day
		attendanceRow(day.AddDate(0, 0, 2), 540, 480, 540), // overtime, never negative
	}

	hours := LateHours(rows)
	assert.True(t, hours.Equal(dec("1")), hours.String())
}

func TestRenderedHours(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rows := []attendance.Attendance{
		attendanceRow(day, 480, 480, 480),
		attendanceRow(day.AddDate(0, 0, 1), 450, 480, 450),
	}

	hours := RenderedHours(rows)
	assert.True(t, hours.Equal(dec("15.5")), hours.String())
}

func TestCreditedDays(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rows := []attendance.Attendance{
		attendanceRow(day, 480, 480, 480),
		attendanceRow(day.AddDate(0, 0, 1), 0, 480, 0), // absent placeholder
		attendanceRow(day.AddDate(0, 0, 2), 300, 480, 300),
	}

	days := CreditedDays(rows, 2)
	assert.True(t, days.Equal(dec("4")), days.String())
}
