package utils

import "time"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayKey formats t's calendar day as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayOfYear returns the 1-based ordinal of t's calendar day (Jan 1 = 1).
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// WeekStart returns midnight of the Monday that starts t's week.
// Sunday belongs to the week that began six days earlier.
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	diff := 1 - wd
	if wd == 0 {
		diff = -6
	}
	return StartOfDay(t).AddDate(0, 0, diff)
}
