package analytics

import "time"

const dayKeyLayout = "2006-01-02"

// endOfDay widens an instant to the last representable moment of its calendar
// day in the instant's own location. Used to make the upper bound of a date
// range inclusive; the lower bound is never widened.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// startOfDay truncates an instant to midnight of its calendar day
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayKey formats an instant as its calendar-day bucket key (YYYY-MM-DD)
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}
