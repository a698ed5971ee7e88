package workdays

import (
	"testing"
	"time"
)

func TestIsWeekend(t *testing.T) {
	cases := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"monday", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), false},
		{"friday", time.Date(2026, 9, 4, 12, 30, 0, 0, time.UTC), false},
		{"saturday", time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), true},
		{"sunday", time.Date(2026, 9, 6, 23, 59, 0, 0, time.UTC), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsWeekend(c.date); got != c.expected {
				t.Errorf("IsWeekend(%v) = %v, want %v", c.date, got, c.expected)
			}
		})
	}
}

func TestInMonth(t *testing.T) {
	cases := []struct {
		name     string
		month    time.Month
		year     int
		expected int
	}{
		// September 2026 starts on a Tuesday and has 30 days.
		{"september 2026", time.September, 2026, 22},
		// February 2026 starts on a Sunday, 28 days.
		{"february 2026", time.February, 2026, 20},
		// February 2024 is a leap month starting on a Thursday.
		{"february 2024", time.February, 2024, 21},
		{"january 2026", time.January, 2026, 22},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InMonth(c.month, c.year); got != c.expected {
				t.Errorf("InMonth(%v, %d) = %d, want %d", c.month, c.year, got, c.expected)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	cases := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			"single weekday",
			time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			1,
		},
		{
			"single weekend day",
			time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"full week mon to sun",
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
			5,
		},
		{
			"spanning two weekends",
			time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			7,
		},
		{
			"ignores time of day",
			time.Date(2026, 9, 2, 23, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 3, 1, 0, 0, 0, time.UTC),
			2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InRange(c.from, c.to); got != c.expected {
				t.Errorf("InRange(%v, %v) = %d, want %d", c.from, c.to, got, c.expected)
			}
		})
	}
}
