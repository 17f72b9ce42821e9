package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftScheduleRepository struct {
	db *database.DB
}

func NewShiftScheduleRepository(db *database.DB) schedule.ShiftScheduleRepository {
	return &shiftScheduleRepository{db: db}
}

const shiftScheduleColumns = `
	s.id, s.employee_id, s.work_time_id, s.effective_date, s.end_date,
	s.recurrence, s.recurrence_interval, s.days_of_week, s.priority,
	s.is_active, s.created_at, s.updated_at,
	w.id, w.name, w.start_time, w.end_time, w.total_minutes, w.is_default,
	w.valid_in, w.valid_out, w.created_at, w.updated_at
`

func (r *shiftScheduleRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules s
		JOIN work_times w ON w.id = s.work_time_id
		WHERE s.employee_id = $1 AND s.is_active = true
		ORDER BY s.priority DESC, s.effective_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for employee: %w", err)
	}
	defer rows.Close()

	return scanShiftSchedules(rows)
}

func (r *shiftScheduleRepository) GetOverlapping(ctx context.Context, employeeID string, from time.Time, until *time.Time) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	// Open-ended ranges on either side overlap everything past their start.
	query := `SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules s
		JOIN work_times w ON w.id = s.work_time_id
		WHERE s.employee_id = $1 AND s.is_active = true
		  AND ($2::date IS NULL OR s.effective_date <= $2)
		  AND (s.end_date IS NULL OR s.end_date >= $3)
		ORDER BY s.priority DESC, s.effective_date DESC`

	rows, err := q.Query(ctx, query, employeeID, until, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping schedules: %w", err)
	}
	defer rows.Close()

	return scanShiftSchedules(rows)
}

func (r *shiftScheduleRepository) Create(ctx context.Context, s schedule.ShiftSchedule) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_schedules (
			employee_id, work_time_id, effective_date, end_date,
			recurrence, recurrence_interval, days_of_week, priority, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.WorkTimeID, s.EffectiveDate, s.EndDate,
		s.Recurrence, s.RecurrenceInterval, weekdaysToInts(s.DaysOfWeek), s.Priority,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.ShiftSchedule{}, fmt.Errorf("failed to create shift schedule: %w", err)
	}
	s.IsActive = true

	return s, nil
}

func (r *shiftScheduleRepository) UpdateDays(ctx context.Context, id int64, days []time.Weekday) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_schedules
		SET days_of_week = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, employee_id, work_time_id, effective_date, end_date,
			recurrence, recurrence_interval, days_of_week, priority,
			is_active, created_at, updated_at`

	var s schedule.ShiftSchedule
	var dayInts []int32
	err := q.QueryRow(ctx, query, id, weekdaysToInts(days)).Scan(
		&s.ID, &s.EmployeeID, &s.WorkTimeID, &s.EffectiveDate, &s.EndDate,
		&s.Recurrence, &s.RecurrenceInterval, &dayInts, &s.Priority,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ShiftSchedule{}, schedule.ErrShiftScheduleNotFound
		}
		return schedule.ShiftSchedule{}, fmt.Errorf("failed to update schedule days: %w", err)
	}
	s.DaysOfWeek = intsToWeekdays(dayInts)

	return s, nil
}

func scanShiftSchedules(rows pgx.Rows) ([]schedule.ShiftSchedule, error) {
	var schedules []schedule.ShiftSchedule
	for rows.Next() {
		var s schedule.ShiftSchedule
		var wt schedule.WorkTime
		var dayInts []int32
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.WorkTimeID, &s.EffectiveDate, &s.EndDate,
			&s.Recurrence, &s.RecurrenceInterval, &dayInts, &s.Priority,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&wt.ID, &wt.Name, &wt.StartTime, &wt.EndTime, &wt.TotalMinutes, &wt.IsDefault,
			&wt.ValidIn, &wt.ValidOut, &wt.CreatedAt, &wt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift schedule: %w", err)
		}
		s.DaysOfWeek = intsToWeekdays(dayInts)
		s.WorkTime = &wt
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func weekdaysToInts(days []time.Weekday) []int32 {
	ints := make([]int32, 0, len(days))
	for _, d := range days {
		ints = append(ints, int32(d))
	}
	return ints
}

func intsToWeekdays(ints []int32) []time.Weekday {
	days := make([]time.Weekday, 0, len(ints))
	for _, i := range ints {
		days = append(days, time.Weekday(i))
	}
	return days
}
