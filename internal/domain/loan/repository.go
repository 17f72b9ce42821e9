package loan

import (
	"context"
	"time"
)

// LoanRepository is read-only to the engine; the skip-approval workflow
// lives upstream.
type LoanRepository interface {
	GetByID(ctx context.Context, id int64) (Loan, error)
	ListDeductibleByEmployee(ctx context.Context, employeeID string) ([]Loan, error)
	ListCreditEntries(ctx context.Context, loanID int64, from, until time.Time) ([]JournalEntry, error)
	HasApprovedSkip(ctx context.Context, loanID int64, cutoffFrom, cutoffUntil time.Time) (bool, error)
}
