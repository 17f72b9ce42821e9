package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(hour, minute, second int) time.Time {
	return time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestIsRestDay(t *testing.T) {
	tests := []struct {
		name     string
		workTime WorkTime
		want     bool
	}{
		{
			name:     "name contains rest",
			workTime: WorkTime{Name: "Rest Day", StartTime: clock(8, 0, 0), EndTime: clock(17, 0, 0), TotalMinutes: 480},
			want:     true,
		},
		{
			name:     "zero total minutes",
			workTime: WorkTime{Name: "Standby", StartTime: clock(8, 0, 0), EndTime: clock(8, 0, 0), TotalMinutes: 0},
			want:     true,
		},
		{
			name:     "midnight to midnight",
			workTime: WorkTime{Name: "Off", StartTime: clock(0, 0, 0), EndTime: clock(0, 0, 0), TotalMinutes: 60},
			want:     true,
		},
		{
			name:     "midnight with one-second legacy offset",
			workTime: WorkTime{Name: "Off", StartTime: clock(0, 0, 0), EndTime: clock(0, 0, 1), TotalMinutes: 60},
			want:     true,
		},
		{
			name:     "regular day shift",
			workTime: WorkTime{Name: "Morning", StartTime: clock(8, 0, 0), EndTime: clock(17, 0, 0), TotalMinutes: 480},
			want:     false,
		},
		{
			name:     "overnight shift",
			workTime: WorkTime{Name: "Night", StartTime: clock(22, 0, 0), EndTime: clock(6, 0, 0), TotalMinutes: 420},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.workTime.IsRestDay())
		})
	}
}

func TestMatchesDate(t *testing.T) {
	endDate := day(2025, 3, 31)
	s := ShiftSchedule{
		EffectiveDate: day(2025, 3, 1),
		EndDate:       &endDate,
		DaysOfWeek:    []time.Weekday{time.Monday, time.Wednesday},
		IsActive:      true,
	}

	assert.True(t, s.MatchesDate(day(2025, 3, 3)))   // Monday inside range
	assert.False(t, s.MatchesDate(day(2025, 3, 4)))  // Tuesday, not in day-set
	assert.False(t, s.MatchesDate(day(2025, 2, 24))) // before effective date
	assert.False(t, s.MatchesDate(day(2025, 4, 2)))  // past end date

	s.IsActive = false
	assert.False(t, s.MatchesDate(day(2025, 3, 3)))
}

func TestMatchesDateEmptyDaySetCoversEveryWeekday(t *testing.T) {
	s := ShiftSchedule{EffectiveDate: day(2025, 3, 1), IsActive: true}
	for d := day(2025, 3, 1); !d.After(day(2025, 3, 7)); d = d.AddDate(0, 0, 1) {
		assert.True(t, s.MatchesDate(d), d.Format("2006-01-02"))
	}
}

func TestMatchesDateBiweeklyRecurrence(t *testing.T) {
	s := ShiftSchedule{
		EffectiveDate:      day(2025, 3, 3), // Monday
		Recurrence:         RecurrenceWeekly,
		RecurrenceInterval: 2,
		IsActive:           true,
	}

	assert.True(t, s.MatchesDate(day(2025, 3, 3)))   // week 0
	assert.False(t, s.MatchesDate(day(2025, 3, 10))) // week 1 off
	assert.True(t, s.MatchesDate(day(2025, 3, 17)))  // week 2 on again
}

func TestSelectScheduleHighestPriorityWins(t *testing.T) {
	candidates := []ShiftSchedule{
		{ID: 1, Priority: 3, EffectiveDate: day(2025, 1, 1), IsActive: true},
		{ID: 2, Priority: 1, EffectiveDate: day(2025, 2, 1), IsActive: true},
		{ID: 3, Priority: 3, EffectiveDate: day(2025, 2, 1), IsActive: true},
	}

	selected := SelectSchedule(candidates, day(2025, 3, 15))
	require.NotNil(t, selected)
	// Priority tie between 1 and 3 resolves to the more recent effective date.
	assert.Equal(t, int64(3), selected.ID)
}

func TestSelectScheduleIsDeterministic(t *testing.T) {
	candidates := []ShiftSchedule{
		{ID: 1, Priority: 2, EffectiveDate: day(2025, 1, 1), IsActive: true},
		{ID: 2, Priority: 2, EffectiveDate: day(2025, 1, 15), IsActive: true},
	}

	first := SelectSchedule(candidates, day(2025, 3, 1))
	for i := 0; i < 10; i++ {
		again := SelectSchedule(candidates, day(2025, 3, 1))
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}
}

func TestSelectScheduleNoMatch(t *testing.T) {
	candidates := []ShiftSchedule{
		{ID: 1, Priority: 1, EffectiveDate: day(2025, 6, 1), IsActive: true},
	}
	assert.Nil(t, SelectSchedule(candidates, day(2025, 3, 1)))
	assert.Nil(t, SelectSchedule(nil, day(2025, 3, 1)))
}

func TestConflictsWith(t *testing.T) {
	morning := WorkTime{StartTime: clock(8, 0, 0), EndTime: clock(17, 0, 0)}
	evening := WorkTime{StartTime: clock(18, 0, 0), EndTime: clock(22, 0, 0)}
	overnight := WorkTime{StartTime: clock(22, 0, 0), EndTime: clock(6, 0, 0)}

	base := ShiftSchedule{EffectiveDate: day(2025, 3, 1), DaysOfWeek: []time.Weekday{time.Monday}}

	t.Run("same window same days collide", func(t *testing.T) {
		other := ShiftSchedule{EffectiveDate: day(2025, 3, 10), DaysOfWeek: []time.Weekday{time.Monday}}
		assert.True(t, base.ConflictsWith(other, morning, morning))
	})

	t.Run("disjoint windows do not collide", func(t *testing.T) {
		other := ShiftSchedule{EffectiveDate: day(2025, 3, 10), DaysOfWeek: []time.Weekday{time.Monday}}
		assert.False(t, base.ConflictsWith(other, morning, evening))
	})

	t.Run("disjoint day-sets do not collide", func(t *testing.T) {
		other := ShiftSchedule{EffectiveDate: day(2025, 3, 10), DaysOfWeek: []time.Weekday{time.Tuesday}}
		assert.True(t, !base.ConflictsWith(other, morning, morning))
	})

	t.Run("disjoint date ranges do not collide", func(t *testing.T) {
		end := day(2025, 3, 15)
		bounded := ShiftSchedule{EffectiveDate: day(2025, 3, 1), EndDate: &end, DaysOfWeek: []time.Weekday{time.Monday}}
		later := ShiftSchedule{EffectiveDate: day(2025, 4, 1), DaysOfWeek: []time.Weekday{time.Monday}}
		assert.False(t, bounded.ConflictsWith(later, morning, morning))
	})

	t.Run("overnight window wraps past midnight", func(t *testing.T) {
		other := ShiftSchedule{EffectiveDate: day(2025, 3, 10), DaysOfWeek: []time.Weekday{time.Monday}}
		assert.True(t, base.ConflictsWith(other, evening, overnight))
	})

	t.Run("empty day-set is a wildcard", func(t *testing.T) {
		wildcard := ShiftSchedule{EffectiveDate: day(2025, 3, 10)}
		assert.True(t, base.ConflictsWith(wildcard, morning, morning))
	})
}

func TestSameExceptDaysAndMerge(t *testing.T) {
	a := ShiftSchedule{
		WorkTimeID:    7,
		EffectiveDate: day(2025, 3, 1),
		Priority:      2,
		Recurrence:    RecurrenceNone,
		DaysOfWeek:    []time.Weekday{time.Monday, time.Wednesday},
	}
	b := a
	b.DaysOfWeek = []time.Weekday{time.Friday}

	require.True(t, a.SameExceptDays(b))

	merged := MergeDays(a.DaysOfWeek, b.DaysOfWeek)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, merged)

	b.Priority = 5
	assert.False(t, a.SameExceptDays(b))
}

func TestMergeDaysWildcard(t *testing.T) {
	assert.Nil(t, MergeDays(nil, []time.Weekday{time.Monday}))
	assert.Nil(t, MergeDays([]time.Weekday{time.Monday}, nil))
}
