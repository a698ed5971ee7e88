package workdays

import "time"

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// InMonth counts the working days (Mon-Fri) in the given month. Holidays are
// intentionally not consulted; the attendance rate is defined against the
// plain Mon-Fri calendar.
func InMonth(month time.Month, year int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}
	return count
}

// InRange counts the working days between from and to, inclusive.
func InRange(from, to time.Time) int {
	count := 0
	for d := truncate(from); !d.After(truncate(to)); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}
	return count
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
