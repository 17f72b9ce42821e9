package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, until time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, morning_in, morning_out,
			afternoon_in, afternoon_out, rendered_minutes, late_minutes,
			net_work_minutes, actual_minutes, overtime_approved,
			created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC`

	rows, err := q.Query(ctx, query, employeeID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.MorningIn, &a.MorningOut,
			&a.AfternoonIn, &a.AfternoonOut, &a.RenderedMinutes, &a.LateMinutes,
			&a.NetWorkMinutes, &a.ActualMinutes, &a.OvertimeApproved,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) InsertPlaceholder(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// The (employee_id, date) uniqueness constraint makes re-runs no-ops.
	query := `
		INSERT INTO attendances (employee_id, date)
		VALUES ($1, $2)
		ON CONFLICT (employee_id, date) DO NOTHING`

	tag, err := q.Exec(ctx, query, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to insert attendance placeholder: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
