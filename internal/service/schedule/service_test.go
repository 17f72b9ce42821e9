package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/employee"
	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkTimeRepo struct {
	byID     map[int64]schedule.WorkTime
	fallback *schedule.WorkTime
}

func (f *fakeWorkTimeRepo) GetByID(_ context.Context, id int64) (schedule.WorkTime, error) {
	wt, ok := f.byID[id]
	if !ok {
		return schedule.WorkTime{}, schedule.ErrWorkTimeNotFound
	}
	return wt, nil
}

func (f *fakeWorkTimeRepo) GetFallback(_ context.Context) (schedule.WorkTime, error) {
	if f.fallback == nil {
		return schedule.WorkTime{}, schedule.ErrNoDefaultWorkTime
	}
	return *f.fallback, nil
}

type fakeScheduleRepo struct {
	active      []schedule.ShiftSchedule
	overlapping []schedule.ShiftSchedule

	created     *schedule.ShiftSchedule
	updatedID   int64
	updatedDays []time.Weekday
}

func (f *fakeScheduleRepo) GetActiveByEmployee(_ context.Context, _ string) ([]schedule.ShiftSchedule, error) {
	return f.active, nil
}

func (f *fakeScheduleRepo) GetOverlapping(_ context.Context, _ string, _ time.Time, _ *time.Time) ([]schedule.ShiftSchedule, error) {
	return f.overlapping, nil
}

func (f *fakeScheduleRepo) Create(_ context.Context, s schedule.ShiftSchedule) (schedule.ShiftSchedule, error) {
	s.ID = 100
	f.created = &s
	return s, nil
}

func (f *fakeScheduleRepo) UpdateDays(_ context.Context, id int64, days []time.Weekday) (schedule.ShiftSchedule, error) {
	f.updatedID = id
	f.updatedDays = days
	for _, row := range f.overlapping {
		if row.ID == id {
			row.DaysOfWeek = days
			return row, nil
		}
	}
	return schedule.ShiftSchedule{}, schedule.ErrShiftScheduleNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByIDs(_ context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if e, ok := f.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func clock(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestService(wt *fakeWorkTimeRepo, sched *fakeScheduleRepo, emp *fakeEmployeeRepo) schedule.ScheduleService {
	return NewScheduleService(nil, wt, sched, emp)
}

func TestResolvePicksHighestPriority(t *testing.T) {
	morning := schedule.WorkTime{ID: 1, Name: "Morning", StartTime: clock(8, 0), EndTime: clock(17, 0), TotalMinutes: 480}
	night := schedule.WorkTime{ID: 2, Name: "Night", StartTime: clock(22, 0), EndTime: clock(6, 0), TotalMinutes: 420}

	schedRepo := &fakeScheduleRepo{active: []schedule.ShiftSchedule{
		{ID: 1, WorkTimeID: 1, Priority: 1, EffectiveDate: date(2025, 1, 1), IsActive: true, WorkTime: &morning},
		{ID: 2, WorkTimeID: 2, Priority: 5, EffectiveDate: date(2025, 2, 1), IsActive: true, WorkTime: &night},
	}}
	svc := newTestService(&fakeWorkTimeRepo{}, schedRepo, &fakeEmployeeRepo{})

	resolved, err := svc.Resolve(context.Background(), "emp-1", date(2025, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), resolved.WorkTime.ID)
	assert.False(t, resolved.FromDefault)
	require.NotNil(t, resolved.Schedule)
	assert.Equal(t, int64(2), resolved.Schedule.ID)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	fallback := schedule.WorkTime{ID: 9, Name: "Standard", StartTime: clock(8, 0), EndTime: clock(17, 0), TotalMinutes: 480, IsDefault: true}
	svc := newTestService(&fakeWorkTimeRepo{fallback: &fallback}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	resolved, err := svc.Resolve(context.Background(), "emp-1", date(2025, 3, 10))
	require.NoError(t, err)
	assert.True(t, resolved.FromDefault)
	assert.Nil(t, resolved.Schedule)
	assert.Equal(t, int64(9), resolved.WorkTime.ID)
}

func TestResolveNoDefaultConfigured(t *testing.T) {
	svc := newTestService(&fakeWorkTimeRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Resolve(context.Background(), "emp-1", date(2025, 3, 10))
	assert.ErrorIs(t, err, schedule.ErrNoDefaultWorkTime)
}

func validCreateRequest() schedule.CreateShiftScheduleRequest {
	return schedule.CreateShiftScheduleRequest{
		EmployeeID:    "emp-1",
		WorkTimeID:    1,
		EffectiveDate: "2025-03-01",
		DaysOfWeek:    []string{"monday", "wednesday"},
		Priority:      2,
	}
}

func TestCreateScheduleMergesDaySets(t *testing.T) {
	morning := schedule.WorkTime{ID: 1, StartTime: clock(8, 0), EndTime: clock(17, 0), TotalMinutes: 480}
	existing := schedule.ShiftSchedule{
		ID:            50,
		EmployeeID:    "emp-1",
		WorkTimeID:    1,
		EffectiveDate: date(2025, 3, 1),
		Priority:      2,
		Recurrence:    schedule.RecurrenceNone,
		DaysOfWeek:    []time.Weekday{time.Friday},
		IsActive:      true,
		WorkTime:      &morning,
	}
	schedRepo := &fakeScheduleRepo{overlapping: []schedule.ShiftSchedule{existing}}
	svc := newTestService(
		&fakeWorkTimeRepo{byID: map[int64]schedule.WorkTime{1: morning}},
		schedRepo,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": {ID: "emp-1"}}},
	)

	resp, err := svc.CreateSchedule(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.True(t, resp.Merged)
	assert.Equal(t, int64(50), schedRepo.updatedID)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, schedRepo.updatedDays)
	assert.Nil(t, schedRepo.created, "no new row on merge")
}

func TestCreateScheduleRejectsConflict(t *testing.T) {
	morning := schedule.WorkTime{ID: 1, StartTime: clock(8, 0), EndTime: clock(17, 0), TotalMinutes: 480}
	// Same days, overlapping window, different priority: cannot merge.
	existing := schedule.ShiftSchedule{
		ID:            51,
		EmployeeID:    "emp-1",
		WorkTimeID:    1,
		EffectiveDate: date(2025, 3, 1),
		Priority:      9,
		DaysOfWeek:    []time.Weekday{time.Monday},
		IsActive:      true,
		WorkTime:      &morning,
	}
	svc := newTestService(
		&fakeWorkTimeRepo{byID: map[int64]schedule.WorkTime{1: morning}},
		&fakeScheduleRepo{overlapping: []schedule.ShiftSchedule{existing}},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": {ID: "emp-1"}}},
	)

	_, err := svc.CreateSchedule(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)
}

func TestCreateScheduleCreatesWhenClear(t *testing.T) {
	morning := schedule.WorkTime{ID: 1, StartTime: clock(8, 0), EndTime: clock(17, 0), TotalMinutes: 480}
	schedRepo := &fakeScheduleRepo{}
	svc := newTestService(
		&fakeWorkTimeRepo{byID: map[int64]schedule.WorkTime{1: morning}},
		schedRepo,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": {ID: "emp-1"}}},
	)

	resp, err := svc.CreateSchedule(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.False(t, resp.Merged)
	assert.Equal(t, int64(100), resp.ID)
	require.NotNil(t, schedRepo.created)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, schedRepo.created.DaysOfWeek)
}

func TestCreateScheduleUnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeWorkTimeRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	_, err := svc.CreateSchedule(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateScheduleValidation(t *testing.T) {
	svc := newTestService(&fakeWorkTimeRepo{}, &fakeScheduleRepo{}, &fakeEmployeeRepo{})

	req := validCreateRequest()
	req.EmployeeID = ""
	req.EffectiveDate = "03/01/2025"

	_, err := svc.CreateSchedule(context.Background(), req)
	require.Error(t, err)
}
