package retro

import (
	"context"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/payroll"
	"github.com/centraljuan/payroll-backend-go/internal/domain/retro"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	"github.com/centraljuan/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type RetroServiceImpl struct {
	db          *database.DB
	retroRepo   retro.RetroRepository
	payrollRepo payroll.PayrollRepository

	// runInTx is swapped out by tests; production wiring uses the
	// postgresql transaction helper.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewRetroService(
	db *database.DB,
	retroRepo retro.RetroRepository,
	payrollRepo payroll.PayrollRepository,
) retro.RetroService {
	s := &RetroServiceImpl{
		db:          db,
		retroRepo:   retroRepo,
		payrollRepo: payrollRepo,
	}
	s.runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, postgresql.TxKey, tx))
		})
	}
	return s
}

// CreateAndApply inserts an adjustment directly in applied status bound to
// the payroll run and folds its amount into that payroll's gross. Both
// statements share one transaction: a failure leaves no partial state.
func (s *RetroServiceImpl) CreateAndApply(ctx context.Context, req retro.CreateAndApplyRequest) (retro.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return retro.AdjustmentResponse{}, err
	}

	// Reject unknown payroll ids before mutating anything.
	if _, err := s.payrollRepo.GetByID(ctx, req.PayrollID); err != nil {
		return retro.AdjustmentResponse{}, err
	}

	var effectiveDate *time.Time
	if req.EffectiveDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EffectiveDate)
		if err == nil {
			effectiveDate = &parsed
		}
	}

	now := time.Now().UTC()
	adjustment := retro.Adjustment{
		EmployeeID:    req.EmployeeID,
		Amount:        req.Amount,
		Description:   req.Description,
		EffectiveDate: effectiveDate,
		Status:        retro.StatusPending,
		CreatedBy:     req.CreatedBy,
	}
	if err := adjustment.Apply(req.PayrollID, now); err != nil {
		return retro.AdjustmentResponse{}, err
	}

	var created retro.Adjustment
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.retroRepo.Create(txCtx, adjustment)
		if err != nil {
			return fmt.Errorf("failed to create retro adjustment: %w", err)
		}
		if err := s.payrollRepo.IncrementGross(txCtx, req.PayrollID, req.Amount); err != nil {
			return fmt.Errorf("failed to fold retro amount into payroll %s: %w", req.PayrollID, err)
		}
		return nil
	})
	if err != nil {
		return retro.AdjustmentResponse{}, err
	}

	return mapToResponse(created), nil
}

// Cancel hard-deletes pending rows, soft-cancels anything else. force
// deletes regardless of status. An applied row being cancelled also backs
// its amount out of the bound payroll's gross, atomically with the ledger
// mutation.
func (s *RetroServiceImpl) Cancel(ctx context.Context, id int64, force bool) error {
	adjustment, err := s.retroRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if force || adjustment.DeletableOnCancel() {
		return s.retroRepo.Delete(ctx, id)
	}

	now := time.Now().UTC()
	if err := adjustment.SoftCancel(now); err != nil {
		return err
	}

	return s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.retroRepo.MarkCancelled(txCtx, id, now); err != nil {
			return fmt.Errorf("failed to cancel retro adjustment %d: %w", id, err)
		}
		if adjustment.AppliedInPayrollID != nil {
			if err := s.payrollRepo.IncrementGross(txCtx, *adjustment.AppliedInPayrollID, adjustment.Amount.Neg()); err != nil {
				return fmt.Errorf("failed to back retro amount out of payroll %s: %w", *adjustment.AppliedInPayrollID, err)
			}
		}
		return nil
	})
}

func (s *RetroServiceImpl) TotalsForEmployee(ctx context.Context, employeeID string, asOf *time.Time) (retro.Totals, error) {
	pending, applied, err := s.retroRepo.SumByStatus(ctx, employeeID, asOf)
	if err != nil {
		return retro.Totals{}, fmt.Errorf("failed to sum retro adjustments for employee %s: %w", employeeID, err)
	}
	return retro.Totals{Pending: pending, Applied: applied}, nil
}

// AppliedTotalForPayroll sums applied rows bound to a payroll whose
// effective date falls inside the payroll's own range. Rows without an
// attributable effective date stay applied in the ledger but are excluded
// from the displayed total.
func AppliedTotalForPayroll(adjustments []retro.Adjustment, payrollID string, from, until time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range adjustments {
		if a.AttributableTo(payrollID, from, until) {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// MapAdjustments converts ledger rows into their response form, used both
// here and when nesting retro detail into payroll records.
func MapAdjustments(adjustments []retro.Adjustment) []retro.AdjustmentResponse {
	result := make([]retro.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		result = append(result, mapToResponse(a))
	}
	return result
}

func mapToResponse(a retro.Adjustment) retro.AdjustmentResponse {
	var effectiveDate, appliedAt, cancelledAt *string
	if a.EffectiveDate != nil {
		str := a.EffectiveDate.Format("2006-01-02")
		effectiveDate = &str
	}
	if a.AppliedAt != nil {
		str := a.AppliedAt.Format(time.RFC3339)
		appliedAt = &str
	}
	if a.CancelledAt != nil {
		str := a.CancelledAt.Format(time.RFC3339)
		cancelledAt = &str
	}

	return retro.AdjustmentResponse{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		Amount:             a.Amount,
		Description:        a.Description,
		EffectiveDate:      effectiveDate,
		Status:             string(a.Status),
		AppliedInPayrollID: a.AppliedInPayrollID,
		AppliedAt:          appliedAt,
		CancelledAt:        cancelledAt,
	}
}
