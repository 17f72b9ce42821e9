package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/centraljuan/payroll-backend-go/internal/pkg/database"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	workTimeRepo schedule.WorkTimeRepository
	scheduleRepo schedule.ShiftScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(
	db *database.DB,
	workTimeRepo schedule.WorkTimeRepository,
	scheduleRepo schedule.ShiftScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:           db,
		workTimeRepo: workTimeRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// Resolve fetches the employee's schedule arena once and selects in memory.
func (s *ScheduleServiceImpl) Resolve(ctx context.Context, employeeID string, date time.Time) (schedule.ResolvedShift, error) {
	candidates, err := s.scheduleRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return schedule.ResolvedShift{}, fmt.Errorf("failed to load schedules for employee %s: %w", employeeID, err)
	}

	if selected := schedule.SelectSchedule(candidates, date); selected != nil {
		workTime := selected.WorkTime
		if workTime == nil {
			wt, err := s.workTimeRepo.GetByID(ctx, selected.WorkTimeID)
			if err != nil {
				return schedule.ResolvedShift{}, fmt.Errorf("failed to load work time %d: %w", selected.WorkTimeID, err)
			}
			workTime = &wt
		}
		return schedule.ResolvedShift{
			WorkTime: *workTime,
			Schedule: selected,
		}, nil
	}

	fallback, err := s.workTimeRepo.GetFallback(ctx)
	if err != nil {
		// No default configured: surfaced as a reconciliation warning by
		// callers, never as a hard failure of the whole run.
		return schedule.ResolvedShift{}, err
	}

	return schedule.ResolvedShift{
		WorkTime:    fallback,
		FromDefault: true,
	}, nil
}

// CreateSchedule inserts a new shift schedule after checking the employee's
// existing rows. An insert identical to an existing row except for its
// day-set merges into that row instead of duplicating it; any other overlap
// is rejected.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateShiftScheduleRequest) (schedule.ShiftScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}

	newSchedule := req.ToEntity()

	workTime, err := s.workTimeRepo.GetByID(ctx, newSchedule.WorkTimeID)
	if err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}

	existing, err := s.scheduleRepo.GetOverlapping(ctx, newSchedule.EmployeeID, newSchedule.EffectiveDate, newSchedule.EndDate)
	if err != nil {
		return schedule.ShiftScheduleResponse{}, fmt.Errorf("failed to check overlapping schedules: %w", err)
	}

	for _, row := range existing {
		if !newSchedule.SameExceptDays(row) {
			continue
		}
		merged, err := s.scheduleRepo.UpdateDays(ctx, row.ID, schedule.MergeDays(row.DaysOfWeek, newSchedule.DaysOfWeek))
		if err != nil {
			return schedule.ShiftScheduleResponse{}, fmt.Errorf("failed to merge day-set into schedule %d: %w", row.ID, err)
		}
		return schedule.NewShiftScheduleResponse(merged, true), nil
	}

	for _, row := range existing {
		rowWindow := row.WorkTime
		if rowWindow == nil {
			wt, err := s.workTimeRepo.GetByID(ctx, row.WorkTimeID)
			if err != nil {
				if errors.Is(err, schedule.ErrWorkTimeNotFound) {
					continue
				}
				return schedule.ShiftScheduleResponse{}, err
			}
			rowWindow = &wt
		}
		if newSchedule.ConflictsWith(row, workTime, *rowWindow) {
			return schedule.ShiftScheduleResponse{}, schedule.ErrScheduleConflict
		}
	}

	created, err := s.scheduleRepo.Create(ctx, newSchedule)
	if err != nil {
		return schedule.ShiftScheduleResponse{}, fmt.Errorf("failed to create shift schedule: %w", err)
	}

	return schedule.NewShiftScheduleResponse(created, false), nil
}
