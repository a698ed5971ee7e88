package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hrm-backend-go/internal/domain/employee"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/workdays"
)

type Service struct {
	db         database.TxBeginner
	classifier attendance.Classifier
	now        func() time.Time
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewService(db database.TxBeginner, attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{
		db:                   db,
		classifier:           attendance.DefaultClassifier,
		now:                  time.Now,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// WithClassifier overrides the clock-in status rule.
func (s *Service) WithClassifier(c attendance.Classifier) *Service {
	s.classifier = c
	return s
}

// ClockIn opens today's attendance record for the caller. Calling it twice
// on the same day fails.
func (s *Service) ClockIn(ctx context.Context) (attendance.Attendance, error) {
	employeeID, err := s.callerEmployee(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now()
	today := dateOnly(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		if existing.TimeIn != nil {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		existing.TimeIn = &now
		existing.IsPresent = true
		existing.Status = s.classifier(now)
		if err := s.AttendanceRepository.Update(ctx, existing); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		return s.AttendanceRepository.GetByID(ctx, existing.ID)
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		TimeIn:     &now,
		IsPresent:  true,
		Status:     s.classifier(now),
	})
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// ClockOut closes today's record and derives work and overtime hours.
func (s *Service) ClockOut(ctx context.Context) (attendance.Attendance, error) {
	employeeID, err := s.callerEmployee(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now()
	today := dateOnly(now)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, attendance.ErrNotClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if record.TimeIn == nil {
		return attendance.Attendance{}, attendance.ErrNotClockedIn
	}
	if record.TimeOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}

	workHours, isOvertime, overtimeHours := attendance.ComputeHours(*record.TimeIn, now)
	record.TimeOut = &now
	record.WorkHours = &workHours
	record.IsOvertime = isOvertime
	if isOvertime {
		record.OvertimeHours = &overtimeHours
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return s.AttendanceRepository.GetByID(ctx, record.ID)
}

// Create is the manual entry path for administrators.
func (s *Service) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.Attendance, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.Attendance{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date); err == nil {
		return attendance.Attendance{}, attendance.ErrDuplicateRecord
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to check attendance: %w", err)
	}

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		IsPresent:  req.IsPresent,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	if record.Status == "" {
		record.Status = attendance.StatusPresent
	}
	if err := applyTimes(&record, req.TimeIn, req.TimeOut); err != nil {
		return attendance.Attendance{}, err
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return s.AttendanceRepository.GetByID(ctx, created.ID)
}

// Update edits an existing record, recomputing hours when both times are set.
func (s *Service) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.Attendance{}, err
	}

	record.IsPresent = req.IsPresent
	if req.Status != "" {
		record.Status = req.Status
	}
	record.Notes = req.Notes
	if err := applyTimes(&record, req.TimeIn, req.TimeOut); err != nil {
		return attendance.Attendance{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return s.AttendanceRepository.GetByID(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (attendance.Attendance, error) {
	return s.AttendanceRepository.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// ListByDate returns every employee's record for one day.
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return s.AttendanceRepository.ListByDate(ctx, dateOnly(date))
}

// ListMine returns the caller's records between from and to inclusive.
func (s *Service) ListMine(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	employeeID, err := s.callerEmployee(ctx)
	if err != nil {
		return nil, err
	}
	return s.AttendanceRepository.ListByEmployeeRange(ctx, employeeID, dateOnly(from), dateOnly(to))
}

// Summary aggregates the caller's month. Working days count Mon-Fri only.
func (s *Service) Summary(ctx context.Context, month, year int) (attendance.SummaryResponse, error) {
	employeeID, err := s.callerEmployee(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.ListByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := attendance.SummaryResponse{
		Month:       month,
		Year:        year,
		WorkingDays: workdays.InMonth(time.Month(month), year),
	}
	for _, r := range records {
		if r.IsPresent {
			summary.PresentDays++
		} else {
			summary.AbsentDays++
		}
		if r.Status == attendance.StatusLate {
			summary.LateDays++
		}
		if r.WorkHours != nil {
			summary.TotalWorkHours += *r.WorkHours
		}
		if r.OvertimeHours != nil {
			summary.TotalOvertimeHours += *r.OvertimeHours
		}
	}
	if summary.WorkingDays > 0 {
		summary.AttendanceRate = float64(summary.PresentDays) / float64(summary.WorkingDays) * 100
	}

	return summary, nil
}

func (s *Service) callerEmployee(ctx context.Context) (string, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return "", err
	}
	return cu.RequireEmployee()
}

func applyTimes(record *attendance.Attendance, timeIn, timeOut *string) error {
	if timeIn != nil {
		t, err := time.Parse(time.RFC3339, *timeIn)
		if err != nil {
			return fmt.Errorf("failed to parse time_in: %w", err)
		}
		record.TimeIn = &t
	}
	if timeOut != nil {
		t, err := time.Parse(time.RFC3339, *timeOut)
		if err != nil {
			return fmt.Errorf("failed to parse time_out: %w", err)
		}
		record.TimeOut = &t
	}

	if record.TimeIn != nil && record.TimeOut != nil {
		workHours, isOvertime, overtimeHours := attendance.ComputeHours(*record.TimeIn, *record.TimeOut)
		record.WorkHours = &workHours
		record.IsOvertime = isOvertime
		if isOvertime {
			record.OvertimeHours = &overtimeHours
		} else {
			record.OvertimeHours = nil
		}
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
