package holiday

import "time"

type Holiday struct {
	ID       int64
	Name     string
	Date     time.Time
	IsYearly bool // recurs every year on the same month/day
}

// ProjectInRange expands holidays onto the calendar days of [from, until]
// inclusive. Yearly holidays are projected onto every year the range spans;
// one-off holidays count only on their own date.
func ProjectInRange(holidays []Holiday, from, until time.Time) map[time.Time]Holiday {
	covered := make(map[time.Time]Holiday)
	fromDay := dayOf(from)
	untilDay := dayOf(until)

	for _, h := range holidays {
		if h.IsYearly {
			for year := fromDay.Year(); year <= untilDay.Year(); year++ {
				day := time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
				if !day.Before(fromDay) && !day.After(untilDay) {
					covered[day] = h
				}
			}
			continue
		}
		day := dayOf(h.Date)
		if !day.Before(fromDay) && !day.After(untilDay) {
			covered[day] = h
		}
	}
	return covered
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
