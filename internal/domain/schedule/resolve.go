package schedule

import (
	"strings"
	"time"
)

// restDayMidnightTolerance absorbs rows stored as 00:00:01 by legacy imports.
const restDayMidnightTolerance = time.Second

// IsRestDay classifies a shift window as a non-working day: a "rest" name,
// a zero-length window, or a midnight-to-midnight window.
func (w WorkTime) IsRestDay() bool {
	if strings.Contains(strings.ToLower(w.Name), "rest") {
		return true
	}
	if w.TotalMinutes == 0 {
		return true
	}
	return isMidnight(w.StartTime) && isMidnight(w.EndTime)
}

func isMidnight(t time.Time) bool {
	sinceMidnight := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
	return sinceMidnight <= restDayMidnightTolerance
}

// MatchesDate reports whether the schedule governs the given calendar date:
// the date sits inside [EffectiveDate, EndDate], the weekday is in the
// day-set (empty set = every day), and the recurrence cadence lands on it.
func (s ShiftSchedule) MatchesDate(date time.Time) bool {
	if !s.IsActive {
		return false
	}

	day := truncateToDay(date)
	if day.Before(truncateToDay(s.EffectiveDate)) {
		return false
	}
	if s.EndDate != nil && day.After(truncateToDay(*s.EndDate)) {
		return false
	}

	if len(s.DaysOfWeek) > 0 && !containsWeekday(s.DaysOfWeek, day.Weekday()) {
		return false
	}

	return s.recurrenceHits(day)
}

func (s ShiftSchedule) recurrenceHits(day time.Time) bool {
	interval := s.RecurrenceInterval
	if interval <= 1 {
		return true
	}

	effective := truncateToDay(s.EffectiveDate)
	switch s.Recurrence {
	case RecurrenceDaily:
		days := int(day.Sub(effective).Hours() / 24)
		return days%interval == 0
	case RecurrenceWeekly:
		days := int(day.Sub(effective).Hours() / 24)
		return (days/7)%interval == 0
	case RecurrenceMonthly:
		months := (day.Year()-effective.Year())*12 + int(day.Month()) - int(effective.Month())
		return months%interval == 0
	default:
		return true
	}
}

// SelectSchedule picks the governing schedule for a date from an in-memory
// candidate arena: highest priority wins, ties broken by the most recent
// effective date. Returns nil when nothing matches.
func SelectSchedule(candidates []ShiftSchedule, date time.Time) *ShiftSchedule {
	var best *ShiftSchedule
	for i := range candidates {
		c := &candidates[i]
		if !c.MatchesDate(date) {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		if c.Priority > best.Priority {
			best = c
			continue
		}
		if c.Priority == best.Priority && c.EffectiveDate.After(best.EffectiveDate) {
			best = c
		}
	}
	return best
}

// ConflictsWith reports whether two schedules for the same employee collide:
// overlapping date ranges, intersecting day-sets, and overlapping shift
// windows. Overnight windows are normalized by pushing the end past 24h.
func (s ShiftSchedule) ConflictsWith(other ShiftSchedule, window, otherWindow WorkTime) bool {
	if !dateRangesOverlap(s.EffectiveDate, s.EndDate, other.EffectiveDate, other.EndDate) {
		return false
	}
	if !daySetsIntersect(s.DaysOfWeek, other.DaysOfWeek) {
		return false
	}
	return shiftWindowsOverlap(window, otherWindow)
}

// SameExceptDays reports whether the only difference between two schedules
// is their day-set. Creation merges day-sets in that case instead of
// inserting a duplicate row.
func (s ShiftSchedule) SameExceptDays(other ShiftSchedule) bool {
	if s.WorkTimeID != other.WorkTimeID || s.Priority != other.Priority {
		return false
	}
	if !truncateToDay(s.EffectiveDate).Equal(truncateToDay(other.EffectiveDate)) {
		return false
	}
	if (s.EndDate == nil) != (other.EndDate == nil) {
		return false
	}
	if s.EndDate != nil && !truncateToDay(*s.EndDate).Equal(truncateToDay(*other.EndDate)) {
		return false
	}
	return s.Recurrence == other.Recurrence && s.RecurrenceInterval == other.RecurrenceInterval
}

// MergeDays returns the union of both day-sets in weekday order. An empty
// set on either side is the wildcard and wins.
func MergeDays(a, b []time.Weekday) []time.Weekday {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	seen := make(map[time.Weekday]bool)
	for _, d := range a {
		seen[d] = true
	}
	for _, d := range b {
		seen[d] = true
	}
	merged := make([]time.Weekday, 0, len(seen))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if seen[d] {
			merged = append(merged, d)
		}
	}
	return merged
}

func dateRangesOverlap(aFrom time.Time, aUntil *time.Time, bFrom time.Time, bUntil *time.Time) bool {
	if aUntil != nil && truncateToDay(*aUntil).Before(truncateToDay(bFrom)) {
		return false
	}
	if bUntil != nil && truncateToDay(*bUntil).Before(truncateToDay(aFrom)) {
		return false
	}
	return true
}

func daySetsIntersect(a, b []time.Weekday) bool {
	// Empty set is the wildcard: intersects everything.
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, d := range a {
		if containsWeekday(b, d) {
			return true
		}
	}
	return false
}

// shiftWindowsOverlap runs the half-open interval test over minutes since
// midnight, adding 24h to an end that lands on or before its start.
func shiftWindowsOverlap(a, b WorkTime) bool {
	aStart, aEnd := windowMinutes(a)
	bStart, bEnd := windowMinutes(b)
	return aStart < bEnd && bStart < aEnd
}

func windowMinutes(w WorkTime) (start, end int) {
	start = w.StartTime.Hour()*60 + w.StartTime.Minute()
	end = w.EndTime.Hour()*60 + w.EndTime.Minute()
	if end <= start {
		end += 24 * 60
	}
	return start, end
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, day := range days {
		if day == d {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
