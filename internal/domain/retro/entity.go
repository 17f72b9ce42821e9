package retro

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApplied   Status = "applied"
	StatusCancelled Status = "cancelled"
)

// Adjustment is a retroactive pay correction scoped to a payroll cutoff.
// Status transitions are guarded: pending→applied, pending→cancelled,
// applied→cancelled (soft only). Cancelled is terminal.
type Adjustment struct {
	ID                 int64
	EmployeeID         string
	Amount             decimal.Decimal
	Description        string
	EffectiveDate      *time.Time
	Status             Status
	AppliedInPayrollID *string
	AppliedAt          *time.Time
	CancelledAt        *time.Time
	CreatedBy          string
	CreatedAt          time.Time
}

// Apply binds the adjustment to a payroll run. Only pending rows move.
func (a *Adjustment) Apply(payrollID string, at time.Time) error {
	if a.Status != StatusPending {
		return ErrInvalidTransition
	}
	a.Status = StatusApplied
	a.AppliedInPayrollID = &payrollID
	a.AppliedAt = &at
	return nil
}

// SoftCancel marks the adjustment cancelled without deleting it, keeping
// the audit trail for applied rows.
func (a *Adjustment) SoftCancel(at time.Time) error {
	if a.Status == StatusCancelled {
		return ErrInvalidTransition
	}
	a.Status = StatusCancelled
	a.CancelledAt = &at
	return nil
}

// DeletableOnCancel reports whether a non-forced cancel may hard-delete the
// row. Only pending rows ever are; everything else is soft-cancelled.
func (a Adjustment) DeletableOnCancel() bool {
	return a.Status == StatusPending
}

// AttributableTo reports whether the adjustment counts toward a payroll's
// displayed retro total: it must be applied to that payroll and carry an
// effective date inside the payroll's own range.
func (a Adjustment) AttributableTo(payrollID string, from, until time.Time) bool {
	if a.Status != StatusApplied || a.AppliedInPayrollID == nil || *a.AppliedInPayrollID != payrollID {
		return false
	}
	if a.EffectiveDate == nil {
		return false
	}
	day := dayOf(*a.EffectiveDate)
	return !day.Before(dayOf(from)) && !day.After(dayOf(until))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
