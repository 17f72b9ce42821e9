package loan

import "github.com/shopspring/decimal"

// AmortizationResult reports scheduled vs. posted deduction for one loan in
// one cutoff. Actual nil means "not yet reconciled", which is distinct from
// a confirmed zero.
type AmortizationResult struct {
	LoanID    int64            `json:"loan_id"`
	Scheduled decimal.Decimal  `json:"scheduled"`
	Actual    *decimal.Decimal `json:"actual,omitempty"`
	Skipped   bool             `json:"skipped"`
	Entries   []JournalEntry   `json:"-"`
}

// EmployeeLoanResult aggregates all of an employee's loans for a cutoff.
// Per-loan failures land in Warnings without aborting the rest.
type EmployeeLoanResult struct {
	Loans          []AmortizationResult `json:"loans"`
	TotalScheduled decimal.Decimal      `json:"total_scheduled"`
	TotalActual    *decimal.Decimal     `json:"total_actual,omitempty"`
	Warnings       []string             `json:"warnings,omitempty"`
}
