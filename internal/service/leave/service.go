package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
}

// Attribute sums approved leave days consumed inside the cutoff into paid
// and unpaid buckets. usable_days never exceeds the overlap with the cutoff
// nor the remaining balance at attribution time.
func (s *LeaveServiceImpl) Attribute(ctx context.Context, employeeID string, from, until time.Time) (leave.AttributionResult, error) {
	requests, err := s.leaveRepo.ListApprovedOverlapping(ctx, employeeID, from, until)
	if err != nil {
		return leave.AttributionResult{}, fmt.Errorf("failed to list leave requests for employee %s: %w", employeeID, err)
	}

	result := leave.AttributionResult{}
	for _, req := range requests {
		overlapDays := float64(req.OverlapDays(from, until))
		if overlapDays == 0 {
			continue
		}

		remaining := 0.0
		if req.Balance != nil {
			remaining = req.Balance.Remaining
		}

		usableDays := overlapDays
		if remaining < usableDays {
			usableDays = remaining
		}
		if usableDays < 0 {
			usableDays = 0
		}

		if req.IsPaid() {
			result.PaidDays += usableDays
		} else {
			result.UnpaidDays += usableDays
		}

		typeName := ""
		if req.LeaveType != nil {
			typeName = req.LeaveType.Name
		}
		result.Detail = append(result.Detail, leave.AttributionDetail{
			RequestID:        req.ID,
			LeaveTypeName:    typeName,
			IsPaid:           req.IsPaid(),
			OverlapDays:      overlapDays,
			UsableDays:       usableDays,
			BalanceRemaining: remaining,
		})
	}

	return result, nil
}
