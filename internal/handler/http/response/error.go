package response

import (
	"errors"
	"net/http"

	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/centraljuan/payroll-backend-go/internal/domain/loan"
	"github.com/centraljuan/payroll-backend-go/internal/domain/payroll"
	"github.com/centraljuan/payroll-backend-go/internal/domain/retro"
	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkTimeNotFound):
		NotFound(w, "Work time not found")
	case errors.Is(err, schedule.ErrShiftScheduleNotFound):
		NotFound(w, "Shift schedule not found")
	case errors.Is(err, schedule.ErrScheduleConflict):
		Conflict(w, "Schedule conflicts with an existing shift")
	case errors.Is(err, schedule.ErrNoDefaultWorkTime):
		InternalServerError(w, "No default work time configured")

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")

	// Retro adjustment domain errors
	case errors.Is(err, retro.ErrAdjustmentNotFound):
		NotFound(w, "Retro adjustment not found")
	case errors.Is(err, retro.ErrInvalidTransition):
		Conflict(w, "Retro adjustment cannot change status from its current state")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this cutoff")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
