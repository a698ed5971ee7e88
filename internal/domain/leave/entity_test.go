package leave

import (
	"testing"
	"time"
)

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			"same day",
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			1,
		},
		{
			"consecutive days",
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			2,
		},
		{
			"full week",
			time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
			7,
		},
		{
			"across month boundary",
			time.Date(2026, 9, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
			4,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InclusiveDays(c.start, c.end); got != c.expected {
				t.Errorf("InclusiveDays(%v, %v) = %d, want %d", c.start, c.end, got, c.expected)
			}
		})
	}
}

func TestLeaveDays(t *testing.T) {
	l := Leave{
		StartDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
	}
	if got := l.Days(); got != 5 {
		t.Errorf("Days() = %d, want 5", got)
	}
}

func TestRemainingDays(t *testing.T) {
	cases := []struct {
		name     string
		balance  LeaveBalance
		expected int
	}{
		{"untouched", LeaveBalance{AllottedDays: 14, UsedDays: 0}, 14},
		{"partially used", LeaveBalance{AllottedDays: 14, UsedDays: 9}, 5},
		{"exhausted", LeaveBalance{AllottedDays: 10, UsedDays: 10}, 0},
		{"overdrawn", LeaveBalance{AllottedDays: 10, UsedDays: 12}, -2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.balance.RemainingDays(); got != c.expected {
				t.Errorf("RemainingDays() = %d, want %d", got, c.expected)
			}
		})
	}
}
