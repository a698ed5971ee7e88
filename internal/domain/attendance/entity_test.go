package attendance

import (
	"testing"
	"time"
)

func TestComputeHours(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		timeIn        time.Time
		timeOut       time.Time
		workHours     float64
		isOvertime    bool
		overtimeHours float64
	}{
		{
			"standard day",
			day.Add(9 * time.Hour),
			day.Add(17 * time.Hour),
			8, false, 0,
		},
		{
			"two hours overtime",
			day.Add(9 * time.Hour),
			day.Add(19 * time.Hour),
			10, true, 2,
		},
		{
			"half day",
			day.Add(9 * time.Hour),
			day.Add(13 * time.Hour),
			4, false, 0,
		},
		{
			"thirty minutes over",
			day.Add(9 * time.Hour),
			day.Add(17*time.Hour + 30*time.Minute),
			8.5, true, 0.5,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			work, overtime, extra := ComputeHours(c.timeIn, c.timeOut)
			if work != c.workHours {
				t.Errorf("workHours = %v, want %v", work, c.workHours)
			}
			if overtime != c.isOvertime {
				t.Errorf("isOvertime = %v, want %v", overtime, c.isOvertime)
			}
			if extra != c.overtimeHours {
				t.Errorf("overtimeHours = %v, want %v", extra, c.overtimeHours)
			}
		})
	}
}

func TestDefaultClassifier(t *testing.T) {
	early := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	late := time.Date(2026, 9, 1, 11, 45, 0, 0, time.UTC)

	if got := DefaultClassifier(early); got != StatusPresent {
		t.Errorf("DefaultClassifier(early) = %q, want %q", got, StatusPresent)
	}
	if got := DefaultClassifier(late); got != StatusPresent {
		t.Errorf("DefaultClassifier(late) = %q, want %q", got, StatusPresent)
	}
}
