package postgresql

import (
	"context"
	"fmt"

	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workTimeRepository struct {
	db *database.DB
}

func NewWorkTimeRepository(db *database.DB) schedule.WorkTimeRepository {
	return &workTimeRepository{db: db}
}

const workTimeColumns = `
	id, name, start_time, end_time, total_minutes, is_default,
	valid_in, valid_out, created_at, updated_at
`

func (r *workTimeRepository) GetByID(ctx context.Context, id int64) (schedule.WorkTime, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workTimeColumns + ` FROM work_times WHERE id = $1`

	var wt schedule.WorkTime
	err := q.QueryRow(ctx, query, id).Scan(
		&wt.ID, &wt.Name, &wt.StartTime, &wt.EndTime, &wt.TotalMinutes, &wt.IsDefault,
		&wt.ValidIn, &wt.ValidOut, &wt.CreatedAt, &wt.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkTime{}, schedule.ErrWorkTimeNotFound
		}
		return schedule.WorkTime{}, fmt.Errorf("failed to get work time: %w", err)
	}

	return wt, nil
}

func (r *workTimeRepository) GetFallback(ctx context.Context) (schedule.WorkTime, error) {
	q := GetQuerier(ctx, r.db)

	// The is_default row wins; with none flagged the lowest id stands in.
	query := `SELECT ` + workTimeColumns + `
		FROM work_times
		ORDER BY is_default DESC, id ASC
		LIMIT 1`

	var wt schedule.WorkTime
	err := q.QueryRow(ctx, query).Scan(
		&wt.ID, &wt.Name, &wt.StartTime, &wt.EndTime, &wt.TotalMinutes, &wt.IsDefault,
		&wt.ValidIn, &wt.ValidOut, &wt.CreatedAt, &wt.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkTime{}, schedule.ErrNoDefaultWorkTime
		}
		return schedule.WorkTime{}, fmt.Errorf("failed to get fallback work time: %w", err)
	}

	return wt, nil
}
