package leave

import "time"

// LeaveType is the catalog entry a leave request is filed against.
type LeaveType struct {
	ID               string
	Name             string
	Description      string
	DefaultDays      int
	RequiresApproval bool
}

// LeaveBalance is the allotted/used ledger for one employee, one leave type,
// one calendar year. Days are reserved at submission time and credited back
// on rejection or cancellation.
type LeaveBalance struct {
	ID           string
	EmployeeID   string
	LeaveTypeID  string
	Year         int
	AllottedDays int
	UsedDays     int
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Resolved for responses
	LeaveTypeName *string
}

// RemainingDays is always derived, never stored.
func (b LeaveBalance) RemainingDays() int {
	return b.AllottedDays - b.UsedDays
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Leave is a time-off request. Status only ever moves Pending->Approved,
// Pending->Rejected, or Pending->deleted (cancel).
type Leave struct {
	ID           string
	EmployeeID   string
	LeaveTypeID  string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	ApprovedByID *string
	ApprovalDate *time.Time
	Comments     *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Resolved for responses
	EmployeeName   *string
	LeaveTypeName  *string
	ApprovedByName *string
}

// Days is the inclusive span of the request in calendar days.
func (l Leave) Days() int {
	return InclusiveDays(l.StartDate, l.EndDate)
}

// InclusiveDays counts calendar days between start and end, inclusive of
// both endpoints.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
