package leave

import "context"

// LeaveTypeRepository - interface for the leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, lt LeaveType) error
	Delete(ctx context.Context, id string) error
}

// LeaveBalanceRepository - interface for the leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, b LeaveBalance) (LeaveBalance, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)

	// ReserveDays increments used_days by days only while the balance stays
	// within allotted_days. Returns ErrInsufficientBalance when the guard
	// fails; this makes concurrent submissions against the same row safe.
	ReserveDays(ctx context.Context, balanceID string, days int) error

	// RestoreDays credits days back after a rejection or cancellation.
	RestoreDays(ctx context.Context, employeeID, leaveTypeID string, year, days int) error
}

// LeaveRepository - interface for the leaves table
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	List(ctx context.Context) ([]Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	Update(ctx context.Context, l Leave) error
	Delete(ctx context.Context, id string) error
}
