package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusApproved Status = "approved"
)

type Loan struct {
	ID             int64
	EmployeeID     string
	Balance        decimal.Decimal
	PayablePerTerm decimal.Decimal
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type EntryType string

const (
	// EntryTypeCredit marks a posted payroll deduction against the loan.
	EntryTypeCredit EntryType = "credit"
	EntryTypeDebit  EntryType = "debit"
)

type JournalEntry struct {
	ID         int64
	LoanID     int64
	EmployeeID string
	Amount     decimal.Decimal
	EntryType  EntryType
	EntryDate  time.Time
}

type SkipStatus string

const (
	SkipStatusPending  SkipStatus = "pending"
	SkipStatusApproved SkipStatus = "approved"
	SkipStatusRejected SkipStatus = "rejected"
)

// SkipRequest suspends a loan's deduction for one payroll cutoff.
type SkipRequest struct {
	ID          int64
	LoanID      int64
	CutoffFrom  time.Time
	CutoffUntil time.Time
	Status      SkipStatus
}
