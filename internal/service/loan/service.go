package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
)

type LoanServiceImpl struct {
	loanRepo  loan.LoanRepository
	graceDays int
}

func NewLoanService(loanRepo loan.LoanRepository, graceDays int) loan.LoanService {
	return &LoanServiceImpl{loanRepo: loanRepo, graceDays: graceDays}
}

// Compute determines the scheduled deduction (payable_per_term while the
// balance is positive and no approved skip covers the cutoff) and the
// posted deduction (credit entries inside the window, re-queried with the
// grace lookahead before concluding nothing has been posted yet).
func (s *LoanServiceImpl) Compute(ctx context.Context, l loan.Loan, from, until time.Time) (loan.AmortizationResult, error) {
	result := loan.AmortizationResult{LoanID: l.ID, Scheduled: decimal.Zero}

	skipped, err := s.loanRepo.HasApprovedSkip(ctx, l.ID, from, until)
	if err != nil {
		return loan.AmortizationResult{}, fmt.Errorf("failed to check skip request for loan %d: %w", l.ID, err)
	}
	if skipped {
		// A skipped loan contributes nothing and is excluded from
		// journal lookups entirely.
		result.Skipped = true
		zero := decimal.Zero
		result.Actual = &zero
		return result, nil
	}

	if l.Balance.IsPositive() {
		result.Scheduled = l.PayablePerTerm
	}

	entries, err := s.loanRepo.ListCreditEntries(ctx, l.ID, from, until)
	if err != nil {
		return loan.AmortizationResult{}, fmt.Errorf("failed to list journal entries for loan %d: %w", l.ID, err)
	}
	if len(entries) == 0 && s.graceDays > 0 {
		entries, err = s.loanRepo.ListCreditEntries(ctx, l.ID, from, until.AddDate(0, 0, s.graceDays))
		if err != nil {
			return loan.AmortizationResult{}, fmt.Errorf("failed to list journal entries for loan %d within grace window: %w", l.ID, err)
		}
	}

	if len(entries) > 0 {
		total := decimal.Zero
		for _, e := range entries {
			total = total.Add(e.Amount)
		}
		result.Actual = &total
		result.Entries = entries
	}
	// Actual stays nil when nothing posted even inside the grace window:
	// "not yet reconciled", not a confirmed zero.

	return result, nil
}

func (s *LoanServiceImpl) ComputeForEmployee(ctx context.Context, employeeID string, from, until time.Time) (loan.EmployeeLoanResult, error) {
	loans, err := s.loanRepo.ListDeductibleByEmployee(ctx, employeeID)
	if err != nil {
		return loan.EmployeeLoanResult{}, fmt.Errorf("failed to list loans for employee %s: %w", employeeID, err)
	}

	result := loan.EmployeeLoanResult{TotalScheduled: decimal.Zero}
	var actualSum decimal.Decimal
	anyActual := false

	for _, l := range loans {
		amort, err := s.Compute(ctx, l, from, until)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("loan %d: %v", l.ID, err))
			continue
		}
		result.Loans = append(result.Loans, amort)
		result.TotalScheduled = result.TotalScheduled.Add(amort.Scheduled)
		if amort.Actual != nil {
			actualSum = actualSum.Add(*amort.Actual)
			anyActual = true
		}
	}

	if anyActual {
		result.TotalActual = &actualSum
	}

	return result, nil
}
