package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, from, until time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Either boundary inside the cutoff, or the request swallowing it whole.
	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.date_from, lr.date_until,
			lr.status, lr.created_at,
			lt.id, lt.name, lt.is_paid,
			lb.id, lb.employee_id, lb.leave_type_id, lb.limit_days, lb.used_days, lb.remaining_days
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		LEFT JOIN leave_balances lb
			ON lb.employee_id = lr.employee_id AND lb.leave_type_id = lr.leave_type_id
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND (
			lr.date_from BETWEEN $2 AND $3
			OR lr.date_until BETWEEN $2 AND $3
			OR (lr.date_from <= $2 AND lr.date_until >= $3)
		  )
		ORDER BY lr.date_from ASC`

	rows, err := q.Query(ctx, query, employeeID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		var lt leave.LeaveType
		var balanceID *int64
		var balanceEmployeeID *string
		var balanceTypeID *int64
		var limitDays, usedDays, remainingDays *float64
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.DateFrom, &lr.DateUntil,
			&lr.Status, &lr.CreatedAt,
			&lt.ID, &lt.Name, &lt.IsPaid,
			&balanceID, &balanceEmployeeID, &balanceTypeID, &limitDays, &usedDays, &remainingDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		lr.LeaveType = &lt
		if balanceID != nil {
			lr.Balance = &leave.LeaveBalance{
				ID:          *balanceID,
				EmployeeID:  *balanceEmployeeID,
				LeaveTypeID: *balanceTypeID,
				Limit:       *limitDays,
				Used:        *usedDays,
				Remaining:   *remainingDays,
			}
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
