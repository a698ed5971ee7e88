package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the attendances table
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	Update(ctx context.Context, a Attendance) error
	Delete(ctx context.Context, id string) error
}
