package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, from, until time.Time) (PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, error)

	// IncrementGross folds a retro amount into an existing record's gross
	// and net. Runs inside the retro apply/cancel transaction.
	IncrementGross(ctx context.Context, payrollID string, amount decimal.Decimal) error

	// GetStatutoryShares reads the upstream contribution snapshot for an
	// employee; per-employee overrides take precedence over table values.
	GetStatutoryShares(ctx context.Context, employeeID string) (StatutoryShares, error)

	// UpsertPeriodSummary refreshes the denormalized per-cutoff totals used
	// by reporting. Failures here never roll back payroll rows.
	UpsertPeriodSummary(ctx context.Context, from, until time.Time) error
}
