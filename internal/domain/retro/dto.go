package retro

import (
	"github.com/centraljuan/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAndApplyRequest struct {
	EmployeeID    string          `json:"employee_id"`
	PayrollID     string          `json:"payroll_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	EffectiveDate *string         `json:"effective_date,omitempty"`
	CreatedBy     string          `json:"-"`
}

func (r *CreateAndApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PayrollID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_id", Message: "is required"})
	}
	if r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must not be zero"})
	}
	if len(r.Description) < 3 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "must be at least 3 characters"})
	}
	if r.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID                 int64           `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	EffectiveDate      *string         `json:"effective_date,omitempty"`
	Status             string          `json:"status"`
	AppliedInPayrollID *string         `json:"applied_in_payroll_id,omitempty"`
	AppliedAt          *string         `json:"applied_at,omitempty"`
	CancelledAt        *string         `json:"cancelled_at,omitempty"`
}

// Totals groups adjustment amounts by non-terminal status.
type Totals struct {
	Pending decimal.Decimal `json:"pending"`
	Applied decimal.Decimal `json:"applied"`
}
