package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/loan"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, balance, payable_per_term, status, created_at, updated_at
		FROM loans
		WHERE id = $1`

	var l loan.Loan
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.EmployeeID, &l.Balance, &l.PayablePerTerm, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

func (r *loanRepository) ListDeductibleByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, balance, payable_per_term, status, created_at, updated_at
		FROM loans
		WHERE employee_id = $1 AND status IN ('active', 'approved') AND balance > 0
		ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.Balance, &l.PayablePerTerm, &l.Status, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *loanRepository) ListCreditEntries(ctx context.Context, loanID int64, from, until time.Time) ([]loan.JournalEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, loan_id, employee_id, amount, entry_type, entry_date
		FROM loan_journal_entries
		WHERE loan_id = $1 AND entry_type = 'credit' AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date ASC`

	rows, err := q.Query(ctx, query, loanID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan journal entries: %w", err)
	}
	defer rows.Close()

	var entries []loan.JournalEntry
	for rows.Next() {
		var e loan.JournalEntry
		if err := rows.Scan(&e.ID, &e.LoanID, &e.EmployeeID, &e.Amount, &e.EntryType, &e.EntryDate); err != nil {
			return nil, fmt.Errorf("failed to scan loan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *loanRepository) HasApprovedSkip(ctx context.Context, loanID int64, cutoffFrom, cutoffUntil time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM loan_skip_requests
			WHERE loan_id = $1
			  AND status = 'approved'
			  AND cutoff_from <= $3
			  AND cutoff_until >= $2
		)`

	var exists bool
	if err := q.QueryRow(ctx, query, loanID, cutoffFrom, cutoffUntil).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check loan skip request: %w", err)
	}

	return exists, nil
}
