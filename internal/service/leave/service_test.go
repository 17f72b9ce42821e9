package leave

import (
	"context"
	"testing"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, _ string, _, _ time.Time) ([]leave.LeaveRequest, error) {
	return f.requests, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAttributeCapsByOverlapAndBalance(t *testing.T) {
	repo := &fakeLeaveRepo{requests: []leave.LeaveRequest{
		{
			// 5 overlap days, but only 3 remaining in the balance.
			ID:        1,
			DateFrom:  date(2025, 3, 3),
			DateUntil: date(2025, 3, 7),
			LeaveType: &leave.LeaveType{Name: "Vacation Leave", IsPaid: true},
			Balance:   &leave.LeaveBalance{Limit: 15, Used: 12, Remaining: 3},
		},
		{
			// Request extends past the cutoff: only days inside it count.
			ID:        2,
			DateFrom:  date(2025, 3, 13),
			DateUntil: date(2025, 3, 20),
			LeaveType: &leave.LeaveType{Name: "Leave Without Pay", IsPaid: false},
		},
	}}
	svc := NewLeaveService(repo)

	result, err := svc.Attribute(context.Background(), "emp-1", date(2025, 3, 1), date(2025, 3, 15))
	require.NoError(t, err)

	assert.Equal(t, 3.0, result.PaidDays, "capped by remaining balance")
	assert.Equal(t, 3.0, result.UnpaidDays, "March 13-15 only")
	require.Len(t, result.Detail, 2)
	assert.Equal(t, 5.0, result.Detail[0].OverlapDays)
	assert.Equal(t, 3.0, result.Detail[0].UsableDays)
	assert.True(t, result.Detail[0].IsPaid)
}

func TestAttributeNegativeRemainingClampsToZero(t *testing.T) {
	repo := &fakeLeaveRepo{requests: []leave.LeaveRequest{
		{
			ID:        1,
			DateFrom:  date(2025, 3, 3),
			DateUntil: date(2025, 3, 5),
			LeaveType: &leave.LeaveType{Name: "Vacation Leave", IsPaid: true},
			Balance:   &leave.LeaveBalance{Limit: 10, Used: 12, Remaining: -2},
		},
	}}
	svc := NewLeaveService(repo)

	result, err := svc.Attribute(context.Background(), "emp-1", date(2025, 3, 1), date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PaidDays)
}

func TestAttributeMissingBalanceMeansNothingUsable(t *testing.T) {
	repo := &fakeLeaveRepo{requests: []leave.LeaveRequest{
		{
			ID:        1,
			DateFrom:  date(2025, 3, 3),
			DateUntil: date(2025, 3, 5),
			LeaveType: &leave.LeaveType{Name: "Vacation Leave", IsPaid: true},
		},
	}}
	svc := NewLeaveService(repo)

	result, err := svc.Attribute(context.Background(), "emp-1", date(2025, 3, 1), date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PaidDays)
}

func TestAttributeEmpty(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{})

	result, err := svc.Attribute(context.Background(), "emp-1", date(2025, 3, 1), date(2025, 3, 15))
	require.NoError(t, err)
	assert.Zero(t, result.PaidDays)
	assert.Zero(t, result.UnpaidDays)
	assert.Empty(t, result.Detail)
}
