package postgresql

import (
	"context"
	"fmt"

	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, salary_type, monthly_rate,
	basic_daily_salary, employee_type, status, hire_date, created_at, updated_at
`

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.SalaryType, &e.MonthlyRate,
		&e.BasicDailySalary, &e.EmployeeType, &e.Status, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = 'active' ORDER BY employee_code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func (r *employeeRepository) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ANY($1) ORDER BY employee_code`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by ids: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.EmployeeCode, &e.FullName, &e.SalaryType, &e.MonthlyRate,
			&e.BasicDailySalary, &e.EmployeeType, &e.Status, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
