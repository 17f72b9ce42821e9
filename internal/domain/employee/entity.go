package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	SalaryType       SalaryType
	MonthlyRate      decimal.Decimal
	BasicDailySalary decimal.Decimal
	EmployeeType     EmployeeType
	Status           Status
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SalaryType string

const (
	SalaryTypeMonthly SalaryType = "monthly"
	SalaryTypeDaily   SalaryType = "daily"
)

type EmployeeType string

const (
	EmployeeTypeRegular      EmployeeType = "regular"
	EmployeeTypeOJT          EmployeeType = "ojt"
	EmployeeTypeProjectBased EmployeeType = "project_based"
	EmployeeTypeContractual  EmployeeType = "contractual"
)

var EmployeeTypeValues = []string{
	string(EmployeeTypeRegular),
	string(EmployeeTypeOJT),
	string(EmployeeTypeProjectBased),
	string(EmployeeTypeContractual),
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ExemptFromStatutory reports whether statutory contribution shares are
// zeroed for this employee regardless of configured contribution tables.
func (e Employee) ExemptFromStatutory() bool {
	return e.EmployeeType == EmployeeTypeOJT || e.EmployeeType == EmployeeTypeProjectBased
}
