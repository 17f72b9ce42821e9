package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/holiday"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) ListForRange(ctx context.Context, from, until time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	// Yearly holidays come back regardless of date; projection onto the
	// range's years happens in memory.
	query := `
		SELECT id, name, date, is_yearly
		FROM holidays
		WHERE is_yearly = true OR date BETWEEN $1 AND $2
		ORDER BY date ASC`

	rows, err := q.Query(ctx, query, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.IsYearly); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
