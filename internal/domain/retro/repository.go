package retro

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type RetroRepository interface {
	Create(ctx context.Context, a Adjustment) (Adjustment, error)
	GetByID(ctx context.Context, id int64) (Adjustment, error)
	Delete(ctx context.Context, id int64) error
	MarkCancelled(ctx context.Context, id int64, at time.Time) error
	// SumByStatus groups amounts of pending and applied rows for an
	// employee, keeping rows whose effective date is ≤ asOf or null.
	SumByStatus(ctx context.Context, employeeID string, asOf *time.Time) (pending, applied decimal.Decimal, err error)
	ListAppliedForPayroll(ctx context.Context, payrollID string) ([]Adjustment, error)
}
