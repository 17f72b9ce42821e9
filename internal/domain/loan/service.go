package loan

import (
	"context"
	"time"
)

type LoanService interface {
	// Compute returns scheduled vs. posted deduction for one loan and cutoff.
	Compute(ctx context.Context, l Loan, from, until time.Time) (AmortizationResult, error)
	// ComputeForEmployee runs Compute over every deductible loan. One bad
	// loan row becomes a warning, not a failure.
	ComputeForEmployee(ctx context.Context, employeeID string, from, until time.Time) (EmployeeLoanResult, error)
}
