package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/retro"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type retroRepository struct {
	db *database.DB
}

func NewRetroRepository(db *database.DB) retro.RetroRepository {
	return &retroRepository{db: db}
}

const retroColumns = `
	id, employee_id, amount, description, effective_date, status,
	applied_in_payroll_id, applied_at, cancelled_at, created_by, created_at
`

func (r *retroRepository) Create(ctx context.Context, a retro.Adjustment) (retro.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO retro_adjustments (
			employee_id, amount, description, effective_date, status,
			applied_in_payroll_id, applied_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.Amount, a.Description, a.EffectiveDate, a.Status,
		a.AppliedInPayrollID, a.AppliedAt, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return retro.Adjustment{}, fmt.Errorf("failed to create retro adjustment: %w", err)
	}

	return a, nil
}

func (r *retroRepository) GetByID(ctx context.Context, id int64) (retro.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + retroColumns + ` FROM retro_adjustments WHERE id = $1`

	var a retro.Adjustment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.Description, &a.EffectiveDate, &a.Status,
		&a.AppliedInPayrollID, &a.AppliedAt, &a.CancelledAt, &a.CreatedBy, &a.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return retro.Adjustment{}, retro.ErrAdjustmentNotFound
		}
		return retro.Adjustment{}, fmt.Errorf("failed to get retro adjustment: %w", err)
	}

	return a, nil
}

func (r *retroRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM retro_adjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete retro adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return retro.ErrAdjustmentNotFound
	}

	return nil
}

func (r *retroRepository) MarkCancelled(ctx context.Context, id int64, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE retro_adjustments
		SET status = 'cancelled', cancelled_at = $2
		WHERE id = $1 AND status != 'cancelled'`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to cancel retro adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return retro.ErrAdjustmentNotFound
	}

	return nil
}

func (r *retroRepository) SumByStatus(ctx context.Context, employeeID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	// Rows without an effective date always count; dated rows only up to asOf.
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'applied'), 0)
		FROM retro_adjustments
		WHERE employee_id = $1
		  AND ($2::date IS NULL OR effective_date IS NULL OR effective_date <= $2)`

	var pending, applied decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, asOf).Scan(&pending, &applied); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum retro adjustments: %w", err)
	}

	return pending, applied, nil
}

func (r *retroRepository) ListAppliedForPayroll(ctx context.Context, payrollID string) ([]retro.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + retroColumns + `
		FROM retro_adjustments
		WHERE applied_in_payroll_id = $1 AND status = 'applied'
		ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applied retro adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []retro.Adjustment
	for rows.Next() {
		var a retro.Adjustment
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Amount, &a.Description, &a.EffectiveDate, &a.Status,
			&a.AppliedInPayrollID, &a.AppliedAt, &a.CancelledAt, &a.CreatedBy, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan retro adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, rows.Err()
}
