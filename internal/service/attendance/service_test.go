package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/domain/holiday"
	"github.com/centraljuan/payroll-backend-go/internal/domain/leave"
	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	rows     []attendance.Attendance
	inserted map[string]bool
}

func newFakeAttendanceRepo(rows ...attendance.Attendance) *fakeAttendanceRepo {
	f := &fakeAttendanceRepo{inserted: make(map[string]bool)}
	for _, r := range rows {
		f.rows = append(f.rows, r)
		f.inserted[r.EmployeeID+"|"+r.Date.Format("2006-01-02")] = true
	}
	return f
}

func (f *fakeAttendanceRepo) ListByEmployeeRange(_ context.Context, employeeID string, from, until time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.rows {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(until) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) InsertPlaceholder(_ context.Context, employeeID string, d time.Time) (bool, error) {
	key := employeeID + "|" + d.Format("2006-01-02")
	if f.inserted[key] {
		return false, nil
	}
	f.inserted[key] = true
	f.rows = append(f.rows, attendance.Attendance{EmployeeID: employeeID, Date: d})
	return true, nil
}

// fakeScheduleService resolves weekdays to a fixed shift and flags rest days
// per weekday.
type fakeScheduleService struct {
	restDays map[time.Weekday]bool
}

func (f *fakeScheduleService) Resolve(_ context.Context, _ string, d time.Time) (schedule.ResolvedShift, error) {
	if f.restDays[d.Weekday()] {
		return schedule.ResolvedShift{
			WorkTime: schedule.WorkTime{ID: 2, Name: "Rest Day", TotalMinutes: 0},
		}, nil
	}
	return schedule.ResolvedShift{
		WorkTime: schedule.WorkTime{
			ID:           1,
			Name:         "Morning",
			StartTime:    time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC),
			EndTime:      time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
			TotalMinutes: 480,
		},
	}, nil
}

func (f *fakeScheduleService) CreateSchedule(_ context.Context, _ schedule.CreateShiftScheduleRequest) (schedule.ShiftScheduleResponse, error) {
	return schedule.ShiftScheduleResponse{}, nil
}

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, _ string, _, _ time.Time) ([]leave.LeaveRequest, error) {
	return f.requests, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListForRange(_ context.Context, _, _ time.Time) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo *fakeAttendanceRepo, sched *fakeScheduleService, leaves *fakeLeaveRepo, holidays *fakeHolidayRepo) attendance.AttendanceService {
	return NewAttendanceService(nil, repo, sched, leaves, holidays, 8.0, discardLogger())
}

func TestEnsurePeriodBackfillsWorkdays(t *testing.T) {
	repo := newFakeAttendanceRepo()
	// Saturdays and Sundays are rest days in this arena.
	sched := &fakeScheduleService{restDays: map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}}
	svc := newTestService(repo, sched, &fakeLeaveRepo{}, &fakeHolidayRepo{})

	// 2025-03-03 (Mon) .. 2025-03-09 (Sun): five workdays, two rest days.
	resp, err := svc.EnsurePeriod(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 9))
	require.NoError(t, err)
	assert.Equal(t, 5, resp.InsertedCount)
	assert.Equal(t, []string{"2025-03-08", "2025-03-09"}, resp.SkippedDates)
}

func TestEnsurePeriodIsIdempotent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	sched := &fakeScheduleService{restDays: map[time.Weekday]bool{time.Sunday: true}}
	svc := newTestService(repo, sched, &fakeLeaveRepo{}, &fakeHolidayRepo{})

	first, err := svc.EnsurePeriod(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 7))
	require.NoError(t, err)
	assert.Equal(t, 5, first.InsertedCount)

	second, err := svc.EnsurePeriod(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 7))
	require.NoError(t, err)
	assert.Equal(t, 0, second.InsertedCount)
}

func TestEnsurePeriodKeepsExistingRows(t *testing.T) {
	existing := attendance.Attendance{EmployeeID: "emp-1", Date: date(2025, 3, 4), RenderedMinutes: 480}
	repo := newFakeAttendanceRepo(existing)
	sched := &fakeScheduleService{}
	svc := newTestService(repo, sched, &fakeLeaveRepo{}, &fakeHolidayRepo{})

	resp, err := svc.EnsurePeriod(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.InsertedCount)
}

func fullDay(employeeID string, d time.Time) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID:      employeeID,
		Date:            d,
		RenderedMinutes: 480,
		NetWorkMinutes:  480,
		ActualMinutes:   480,
	}
}

func TestIsEligibleDailyMinimum(t *testing.T) {
	sched := &fakeScheduleService{restDays: map[time.Weekday]bool{time.Saturday: true}}

	t.Run("all full days pass", func(t *testing.T) {
		repo := newFakeAttendanceRepo(
			fullDay("emp-1", date(2025, 3, 3)),
			fullDay("emp-1", date(2025, 3, 4)),
			fullDay("emp-1", date(2025, 3, 5)),
			fullDay("emp-1", date(2025, 3, 6)),
			fullDay("emp-1", date(2025, 3, 7)),
		)
		svc := newTestService(repo, sched, &fakeLeaveRepo{}, &fakeHolidayRepo{})

		ok, err := svc.IsEligibleDailyMinimum(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 9))
		require.NoError(t, err)
		assert.True(t, ok, "Saturday is a rest day and Sunday is always excluded")
	})

	t.Run("one short day disqualifies", func(t *testing.T) {
		short := fullDay("emp-1", date(2025, 3, 4))
		short.RenderedMinutes = 300
		repo := newFakeAttendanceRepo(fullDay("emp-1", date(2025, 3, 3)), short, fullDay("emp-1", date(2025, 3, 5)))
		svc := newTestService(repo, sched, &fakeLeaveRepo{}, &fakeHolidayRepo{})

		ok, err := svc.IsEligibleDailyMinimum(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 5))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("holiday excuses a short day", func(t *testing.T) {
		repo := newFakeAttendanceRepo(fullDay("emp-1", date(2025, 3, 3)), fullDay("emp-1", date(2025, 3, 5)))
		holidays := &fakeHolidayRepo{holidays: []holiday.Holiday{
			{ID: 1, Name: "Founding Day", Date: date(2025, 3, 4)},
		}}
		svc := newTestService(repo, sched, &fakeLeaveRepo{}, holidays)

		ok, err := svc.IsEligibleDailyMinimum(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 5))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("approved paid leave excuses a short day", func(t *testing.T) {
		repo := newFakeAttendanceRepo(fullDay("emp-1", date(2025, 3, 3)), fullDay("emp-1", date(2025, 3, 5)))
		leaves := &fakeLeaveRepo{requests: []leave.LeaveRequest{
			{
				EmployeeID: "emp-1",
				DateFrom:   date(2025, 3, 4),
				DateUntil:  date(2025, 3, 4),
				Status:     leave.RequestStatusApproved,
				LeaveType:  &leave.LeaveType{Name: "Vacation Leave", IsPaid: true},
			},
		}}
		svc := newTestService(repo, sched, leaves, &fakeHolidayRepo{})

		ok, err := svc.IsEligibleDailyMinimum(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 5))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unpaid leave does not excuse", func(t *testing.T) {
		repo := newFakeAttendanceRepo(fullDay("emp-1", date(2025, 3, 3)), fullDay("emp-1", date(2025, 3, 5)))
		leaves := &fakeLeaveRepo{requests: []leave.LeaveRequest{
			{
				EmployeeID: "emp-1",
				DateFrom:   date(2025, 3, 4),
				DateUntil:  date(2025, 3, 4),
				Status:     leave.RequestStatusApproved,
				LeaveType:  &leave.LeaveType{Name: "Leave Without Pay", IsPaid: false},
			},
		}}
		svc := newTestService(repo, sched, leaves, &fakeHolidayRepo{})

		ok, err := svc.IsEligibleDailyMinimum(context.Background(), "emp-1", date(2025, 3, 3), date(2025, 3, 5))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
