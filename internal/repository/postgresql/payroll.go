package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/payroll"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.date_from, p.date_until,
	p.basic_salary, p.total_days, p.total_rendered_hours, p.total_late_hours, p.late_deduction,
	p.half_month_salary, p.total_salary_after_late,
	p.sss_share, p.philhealth_share, p.pagibig_share,
	p.loan_deduction, p.loan_deduction_actual,
	p.total_retro_applied, p.total_allowances, p.total_rewards,
	p.gross_pay, p.net_salary,
	p.attendance_detail, p.leave_detail, p.loan_detail, p.warnings,
	p.created_at, p.updated_at,
	e.full_name, e.employee_code
`

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	attendanceDetail, err := json.Marshal(record.AttendanceDetail)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to marshal attendance detail: %w", err)
	}
	leaveDetail, err := json.Marshal(record.LeaveDetail)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to marshal leave detail: %w", err)
	}
	loanDetail, err := json.Marshal(record.LoanDetail)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to marshal loan detail: %w", err)
	}
	warnings, err := json.Marshal(record.Warnings)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to marshal warnings: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, date_from, date_until,
			basic_salary, total_days, total_rendered_hours, total_late_hours, late_deduction,
			half_month_salary, total_salary_after_late,
			sss_share, philhealth_share, pagibig_share,
			loan_deduction, loan_deduction_actual,
			total_retro_applied, total_allowances, total_rewards,
			gross_pay, net_salary,
			attendance_detail, leave_detail, loan_detail, warnings
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		RETURNING created_at, updated_at`

	err = q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.DateFrom, record.DateUntil,
		record.BasicSalary, record.TotalDays, record.TotalRenderedHours, record.TotalLateHours, record.LateDeduction,
		record.HalfMonthSalary, record.TotalSalaryAfterLate,
		record.SSSShare, record.PhilHealthShare, record.PagibigShare,
		record.LoanDeduction, record.LoanDeductionActual,
		record.TotalRetroApplied, record.TotalAllowances, record.TotalRewards,
		record.GrossPay, record.NetSalary,
		attendanceDetail, leaveDetail, loanDetail, warnings,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1`

	record, err := scanPayrollRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, from, until time.Time) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.date_from = $2 AND p.date_until = $3`

	record, err := scanPayrollRow(q.QueryRow(ctx, query, employeeID, from, until))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by period: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND p.date_from = $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateUntil != nil {
		query += fmt.Sprintf(" AND p.date_until = $%d", argIdx)
		args = append(args, *filter.DateUntil)
		argIdx++
	}

	query += " ORDER BY p.date_from DESC, e.employee_code ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		record, err := scanPayrollRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *payrollRepository) IncrementGross(ctx context.Context, payrollID string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET gross_pay = gross_pay + $2,
			net_salary = net_salary + $2,
			updated_at = now()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, payrollID, amount)
	if err != nil {
		return fmt.Errorf("failed to adjust payroll gross: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

func (r *payrollRepository) GetStatutoryShares(ctx context.Context, employeeID string) (payroll.StatutoryShares, error) {
	q := GetQuerier(ctx, r.db)

	// Per-employee overrides win over the contribution table row.
	query := `
		SELECT
			COALESCE(o.sss_share, c.sss_share, 0),
			COALESCE(o.philhealth_share, c.philhealth_share, 0),
			COALESCE(o.pagibig_share, c.pagibig_share, 0)
		FROM employees e
		LEFT JOIN statutory_contributions c ON c.employee_id = e.id
		LEFT JOIN statutory_overrides o ON o.employee_id = e.id
		WHERE e.id = $1`

	var shares payroll.StatutoryShares
	err := q.QueryRow(ctx, query, employeeID).Scan(&shares.SSS, &shares.PhilHealth, &shares.Pagibig)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.StatutoryShares{}, nil
		}
		return payroll.StatutoryShares{}, fmt.Errorf("failed to get statutory shares: %w", err)
	}

	return shares, nil
}

func (r *payrollRepository) UpsertPeriodSummary(ctx context.Context, from, until time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_period_summaries (
			date_from, date_until, employee_count,
			total_gross, total_net, total_deductions, generated_at
		)
		SELECT date_from, date_until, COUNT(*),
			COALESCE(SUM(gross_pay), 0),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(gross_pay - net_salary), 0),
			now()
		FROM payroll_records
		WHERE date_from = $1 AND date_until = $2
		GROUP BY date_from, date_until
		ON CONFLICT (date_from, date_until) DO UPDATE SET
			employee_count = EXCLUDED.employee_count,
			total_gross = EXCLUDED.total_gross,
			total_net = EXCLUDED.total_net,
			total_deductions = EXCLUDED.total_deductions,
			generated_at = EXCLUDED.generated_at`

	if _, err := q.Exec(ctx, query, from, until); err != nil {
		return fmt.Errorf("failed to upsert period summary: %w", err)
	}

	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayrollRow(row rowScanner) (payroll.PayrollRecord, error) {
	var record payroll.PayrollRecord
	var attendanceDetail, leaveDetail, loanDetail, warnings []byte

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.DateFrom, &record.DateUntil,
		&record.BasicSalary, &record.TotalDays, &record.TotalRenderedHours, &record.TotalLateHours, &record.LateDeduction,
		&record.HalfMonthSalary, &record.TotalSalaryAfterLate,
		&record.SSSShare, &record.PhilHealthShare, &record.PagibigShare,
		&record.LoanDeduction, &record.LoanDeductionActual,
		&record.TotalRetroApplied, &record.TotalAllowances, &record.TotalRewards,
		&record.GrossPay, &record.NetSalary,
		&attendanceDetail, &leaveDetail, &loanDetail, &warnings,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName, &record.EmployeeCode,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	if len(attendanceDetail) > 0 {
		if err := json.Unmarshal(attendanceDetail, &record.AttendanceDetail); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to unmarshal attendance detail: %w", err)
		}
	}
	if len(leaveDetail) > 0 {
		if err := json.Unmarshal(leaveDetail, &record.LeaveDetail); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to unmarshal leave detail: %w", err)
		}
	}
	if len(loanDetail) > 0 {
		if err := json.Unmarshal(loanDetail, &record.LoanDetail); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to unmarshal loan detail: %w", err)
		}
	}
	if len(warnings) > 0 {
		if err := json.Unmarshal(warnings, &record.Warnings); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to unmarshal warnings: %w", err)
		}
	}

	return record, nil
}
