package attendance

import "time"

// At most one Attendance row exists per (employee, calendar date).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     *time.Time
	TimeOut    *time.Time
	IsPresent  bool
	Status     string
	WorkHours  *float64
	IsOvertime bool
	// OvertimeHours is set alongside IsOvertime when WorkHours exceeds the
	// standard day.
	OvertimeHours *float64
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	// Resolved for responses
	EmployeeName *string
}

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusHalfDay = "Half-Day"
)

// StandardWorkHours is the daily threshold above which time counts as
// overtime.
const StandardWorkHours = 8.0

// ComputeHours derives work and overtime hours from a time-in/time-out pair.
func ComputeHours(timeIn, timeOut time.Time) (workHours float64, isOvertime bool, overtimeHours float64) {
	workHours = timeOut.Sub(timeIn).Hours()
	if workHours > StandardWorkHours {
		isOvertime = true
		overtimeHours = workHours - StandardWorkHours
	}
	return workHours, isOvertime, overtimeHours
}

// Classifier decides the status label of a freshly clocked-in record.
// Lateness rules are organization policy and live outside this module; the
// default classifier marks everyone Present.
type Classifier func(clockIn time.Time) string

func DefaultClassifier(time.Time) string {
	return StatusPresent
}
