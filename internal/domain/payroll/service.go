package payroll

import "context"

type PayrollService interface {
	// GeneratePayroll runs the per-employee pipeline for a cutoff. Existing
	// (employee, cutoff) records are skipped; one employee's failure is
	// reported in Failures while the rest of the batch proceeds.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecordResponse, error)
}
