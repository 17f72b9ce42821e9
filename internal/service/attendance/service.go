package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/domain/holiday"
	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	scheduleSvc    schedule.ScheduleService
	leaveRepo      leave.LeaveRepository
	holidayRepo    holiday.HolidayRepository
	minDailyHours  float64
	logger         *slog.Logger
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	scheduleSvc schedule.ScheduleService,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	minDailyHours float64,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		scheduleSvc:    scheduleSvc,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		minDailyHours:  minDailyHours,
		logger:         logger,
	}
}

// EnsurePeriod walks every calendar day of the inclusive range and inserts a
// blank attendance row for scheduled workdays that have none. After this
// runs, a missing row on a non-rest workday means "Absent" downstream.
func (a *AttendanceServiceImpl) EnsurePeriod(ctx context.Context, employeeID string, from, until time.Time) (attendance.ReconcileResponse, error) {
	existing, err := a.attendanceRepo.ListByEmployeeRange(ctx, employeeID, from, until)
	if err != nil {
		return attendance.ReconcileResponse{}, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}

	haveRow := make(map[time.Time]bool, len(existing))
	for _, row := range existing {
		haveRow[dayOf(row.Date)] = true
	}

	resp := attendance.ReconcileResponse{
		EmployeeID: employeeID,
		DateFrom:   from.Format("2006-01-02"),
		DateUntil:  until.Format("2006-01-02"),
	}

	for day := dayOf(from); !day.After(dayOf(until)); day = day.AddDate(0, 0, 1) {
		if haveRow[day] {
			continue
		}

		resolved, err := a.scheduleSvc.Resolve(ctx, employeeID, day)
		if err != nil {
			// Unknown schedule is a warning, not a failure of the run.
			a.logger.Warn("shift resolution failed, skipping date",
				slog.String("employee_id", employeeID),
				slog.String("date", day.Format("2006-01-02")),
				slog.String("error", err.Error()),
			)
			resp.SkippedDates = append(resp.SkippedDates, day.Format("2006-01-02"))
			continue
		}

		if resolved.WorkTime.IsRestDay() {
			resp.SkippedDates = append(resp.SkippedDates, day.Format("2006-01-02"))
			continue
		}

		inserted, err := a.attendanceRepo.InsertPlaceholder(ctx, employeeID, day)
		if err != nil {
			return attendance.ReconcileResponse{}, fmt.Errorf("failed to insert attendance placeholder for %s: %w", day.Format("2006-01-02"), err)
		}
		if inserted {
			resp.InsertedCount++
		}
	}

	return resp, nil
}

// IsEligibleDailyMinimum checks the rendered-hours floor over every
// non-Sunday workday of the range. A single short day without an approved
// paid leave or holiday covering it disqualifies the whole period.
func (a *AttendanceServiceImpl) IsEligibleDailyMinimum(ctx context.Context, employeeID string, from, until time.Time) (bool, error) {
	rows, err := a.attendanceRepo.ListByEmployeeRange(ctx, employeeID, from, until)
	if err != nil {
		return false, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	byDay := make(map[time.Time]attendance.Attendance, len(rows))
	for _, row := range rows {
		byDay[dayOf(row.Date)] = row
	}

	leaves, err := a.leaveRepo.ListApprovedOverlapping(ctx, employeeID, from, until)
	if err != nil {
		return false, fmt.Errorf("failed to list leave requests for employee %s: %w", employeeID, err)
	}

	holidays, err := a.holidayRepo.ListForRange(ctx, from, until)
	if err != nil {
		return false, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidayDays := holiday.ProjectInRange(holidays, from, until)

	for day := dayOf(from); !day.After(dayOf(until)); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			continue
		}

		resolved, err := a.scheduleSvc.Resolve(ctx, employeeID, day)
		if err != nil {
			if errors.Is(err, schedule.ErrNoDefaultWorkTime) {
				continue
			}
			return false, err
		}
		if resolved.WorkTime.IsRestDay() {
			continue
		}

		row := byDay[day]
		if row.RenderedHours() >= a.minDailyHours {
			continue
		}

		if _, isHoliday := holidayDays[day]; isHoliday {
			continue
		}
		if coveredByPaidLeave(leaves, day) {
			continue
		}

		return false, nil
	}

	return true, nil
}

func coveredByPaidLeave(requests []leave.LeaveRequest, day time.Time) bool {
	for _, req := range requests {
		if req.IsPaid() && req.CoversDate(day) {
			return true
		}
	}
	return false
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
