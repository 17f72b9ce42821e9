package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
	"github.com/centraljuan/payroll-backend-go/internal/domain/loan"
	"github.com/centraljuan/payroll-backend-go/internal/domain/payroll"
	"github.com/centraljuan/payroll-backend-go/internal/domain/retro"
	"github.com/centraljuan/payroll-backend-go/internal/domain/reward"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
	retroService "github.com/centraljuan/payroll-backend-go/internal/service/retro"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	retroRepo      retro.RetroRepository
	attendanceSvc  attendance.AttendanceService
	leaveSvc       leave.LeaveService
	loanSvc        loan.LoanService
	rewardSvc      reward.RewardService
	cadence        string
	logger         *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	retroRepo retro.RetroRepository,
	attendanceSvc attendance.AttendanceService,
	leaveSvc leave.LeaveService,
	loanSvc loan.LoanService,
	rewardSvc reward.RewardService,
	cadence string,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		retroRepo:      retroRepo,
		attendanceSvc:  attendanceSvc,
		leaveSvc:       leaveSvc,
		loanSvc:        loanSvc,
		rewardSvc:      rewardSvc,
		cadence:        cadence,
		logger:         logger,
	}
}

// GeneratePayroll runs the pipeline per employee: shift-aware attendance
// reconciliation, then leave, loans, rewards, statutory shares, and the
// late-deduction math. One employee's failure is isolated into Failures;
// the batch keeps going.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.DateFrom)
	until, _ := time.Parse("2006-01-02", req.DateUntil)

	var employees []employee.Employee
	var err error
	if len(req.EmployeeIDs) > 0 {
		employees, err = s.employeeRepo.GetByIDs(ctx, req.EmployeeIDs)
	} else {
		employees, err = s.employeeRepo.GetActive(ctx)
	}
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	resp := payroll.GeneratePayrollResponse{}
	for _, emp := range employees {
		// Skip cutoffs already generated: re-running is a no-op.
		_, err := s.payrollRepo.GetByEmployeePeriod(ctx, emp.ID, from, until)
		if err == nil {
			continue
		}
		if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			resp.Failures = append(resp.Failures, payroll.EmployeeFailure{EmployeeID: emp.ID, Error: err.Error()})
			continue
		}

		record, err := s.generateForEmployee(ctx, emp, from, until)
		if err != nil {
			resp.Failures = append(resp.Failures, payroll.EmployeeFailure{EmployeeID: emp.ID, Error: err.Error()})
			continue
		}
		resp.Records = append(resp.Records, s.mapToResponse(record))
	}

	// Reporting summary refresh is best-effort: a failure here never rolls
	// back the committed payroll rows.
	if err := s.payrollRepo.UpsertPeriodSummary(ctx, from, until); err != nil {
		warning := fmt.Sprintf("period summary upsert failed: %v", err)
		s.logger.Warn("non-fatal period summary upsert failure",
			slog.String("date_from", req.DateFrom),
			slog.String("date_until", req.DateUntil),
			slog.String("error", err.Error()),
		)
		resp.SummaryWarning = &warning
	}

	return resp, nil
}

func (s *PayrollServiceImpl) generateForEmployee(ctx context.Context, emp employee.Employee, from, until time.Time) (payroll.PayrollRecord, error) {
	// Shift resolution precedes attendance, which precedes everything that
	// reads rendered time. Order within one employee is strict.
	if _, err := s.attendanceSvc.EnsurePeriod(ctx, emp.ID, from, until); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("attendance reconciliation: %w", err)
	}

	rows, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, from, until)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("attendance lookup: %w", err)
	}

	eligible, err := s.attendanceSvc.IsEligibleDailyMinimum(ctx, emp.ID, from, until)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("minimum-hours eligibility: %w", err)
	}

	leaveResult, err := s.leaveSvc.Attribute(ctx, emp.ID, from, until)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("leave attribution: %w", err)
	}

	loanResult, err := s.loanSvc.ComputeForEmployee(ctx, emp.ID, from, until)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("loan amortization: %w", err)
	}

	shares, err := s.payrollRepo.GetStatutoryShares(ctx, emp.ID)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("statutory shares: %w", err)
	}
	if emp.ExemptFromStatutory() {
		shares = shares.Zeroed()
	}

	renderedHours := RenderedHours(rows)
	totalDays := CreditedDays(rows, leaveResult.PaidDays)

	renderedHoursF, _ := renderedHours.Float64()
	daysCreditedF, _ := totalDays.Float64()
	evaluation, err := s.rewardSvc.Evaluate(ctx, emp.ID, from, until, reward.EvaluationContext{
		EmployeeType:       string(emp.EmployeeType),
		BasicSalary:        emp.BasicDailySalary,
		TotalRenderedHours: renderedHoursF,
		DaysCredited:       daysCreditedF,
		Cadence:            s.cadence,
		DailyMinimumMet:    eligible,
	})
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("reward evaluation: %w", err)
	}

	lateHours := LateHours(rows)
	hourlyRate := HourlyRate(emp.SalaryType, emp.MonthlyRate, emp.BasicDailySalary)
	lateDeduction := LateDeduction(hourlyRate, lateHours)
	halfBase := HalfPeriodBase(emp.SalaryType, emp.MonthlyRate, emp.BasicDailySalary, totalDays, nil)
	netAfterLate := NetBeforeExtras(halfBase, lateDeduction)

	// Retro is folded in after generation via the ledger; a fresh record
	// starts with nothing applied.
	gross := netAfterLate.Add(evaluation.TotalAllowances).Add(evaluation.TotalRewards)

	loanDeducted := loanResult.TotalScheduled
	if loanResult.TotalActual != nil {
		loanDeducted = *loanResult.TotalActual
	}
	net := gross.Sub(shares.Total()).Sub(loanDeducted).Round(2)

	record := payroll.PayrollRecord{
		EmployeeID:           emp.ID,
		DateFrom:             from,
		DateUntil:            until,
		BasicSalary:          emp.BasicDailySalary,
		TotalDays:            totalDays,
		TotalRenderedHours:   renderedHours.Round(2),
		TotalLateHours:       lateHours.Round(2),
		LateDeduction:        lateDeduction,
		HalfMonthSalary:      halfBase.Round(2),
		TotalSalaryAfterLate: netAfterLate,
		SSSShare:             shares.SSS,
		PhilHealthShare:      shares.PhilHealth,
		PagibigShare:         shares.Pagibig,
		LoanDeduction:        loanResult.TotalScheduled,
		LoanDeductionActual:  loanResult.TotalActual,
		TotalRetroApplied:    decimal.Zero,
		TotalAllowances:      evaluation.TotalAllowances,
		TotalRewards:         evaluation.TotalRewards,
		GrossPay:             gross.Round(2),
		NetSalary:            net,
		AttendanceDetail:     daySummaries(rows),
		LeaveDetail:          leaveResult,
		LoanDetail:           loanResult,
		Warnings:             loanResult.Warnings,
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("persist payroll record: %w", err)
	}
	return created, nil
}

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if err := s.attachRetro(ctx, &record); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return s.mapToResponse(record), nil
}

func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for i := range records {
		if err := s.attachRetro(ctx, &records[i]); err != nil {
			return nil, err
		}
		result = append(result, s.mapToResponse(records[i]))
	}
	return result, nil
}

// attachRetro recomputes the displayed retro total from the ledger: only
// applied rows bound to this payroll with an effective date inside the
// payroll's own range count. Non-attributable rows stay applied in the
// ledger but are excluded here.
func (s *PayrollServiceImpl) attachRetro(ctx context.Context, record *payroll.PayrollRecord) error {
	adjustments, err := s.retroRepo.ListAppliedForPayroll(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to list retro adjustments for payroll %s: %w", record.ID, err)
	}
	record.TotalRetroApplied = retroService.AppliedTotalForPayroll(adjustments, record.ID, record.DateFrom, record.DateUntil)
	record.RetroDetail = retroService.MapAdjustments(adjustments)
	return nil
}

func (s *PayrollServiceImpl) mapToResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	return payroll.PayrollRecordResponse{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		DateFrom:             r.DateFrom.Format("2006-01-02"),
		DateUntil:            r.DateUntil.Format("2006-01-02"),
		BasicSalary:          r.BasicSalary,
		TotalDays:            r.TotalDays,
		TotalRenderedHours:   r.TotalRenderedHours,
		TotalLateHours:       r.TotalLateHours,
		LateDeduction:        r.LateDeduction,
		HalfMonthSalary:      r.HalfMonthSalary,
		TotalSalaryAfterLate: r.TotalSalaryAfterLate,
		SSSShare:             r.SSSShare,
		PhilHealthShare:      r.PhilHealthShare,
		PagibigShare:         r.PagibigShare,
		LoanDeduction:        r.LoanDeduction,
		LoanDeductionActual:  r.LoanDeductionActual,
		TotalRetroApplied:    r.TotalRetroApplied,
		TotalAllowances:      r.TotalAllowances,
		TotalRewards:         r.TotalRewards,
		GrossPay:             r.GrossPay,
		NetSalary:            r.NetSalary,
		EmployeeName:         r.EmployeeName,
		EmployeeCode:         r.EmployeeCode,
		AttendanceDetail:     r.AttendanceDetail,
		LeaveDetail:          r.LeaveDetail,
		LoanDetail:           r.LoanDetail,
		RetroDetail:          r.RetroDetail,
		Warnings:             r.Warnings,
	}
}

func daySummaries(rows []attendance.Attendance) []attendance.DaySummary {
	summaries := make([]attendance.DaySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, attendance.DaySummary{
			Date:            row.Date.Format("2006-01-02"),
			RenderedMinutes: row.RenderedMinutes,
			LateMinutes:     row.LateMinutesComputed(),
			NetWorkMinutes:  row.NetWorkMinutes,
			ActualMinutes:   row.ActualMinutes,
			RenderedHours:   row.RenderedHours(),
		})
	}
	return summaries
}
