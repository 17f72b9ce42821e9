package retro

import (
	"context"
	"time"
)

type RetroService interface {
	// CreateAndApply inserts an adjustment directly in applied status bound
	// to a payroll run and folds the amount into that payroll's gross.
	// Ledger insert and gross mutation commit or roll back together.
	CreateAndApply(ctx context.Context, req CreateAndApplyRequest) (AdjustmentResponse, error)

	// Cancel removes or soft-cancels an adjustment. force hard-deletes
	// regardless of status; otherwise pending rows are deleted and anything
	// else is soft-cancelled to preserve the audit trail.
	Cancel(ctx context.Context, id int64, force bool) error

	TotalsForEmployee(ctx context.Context, employeeID string, asOf *time.Time) (Totals, error)
}
