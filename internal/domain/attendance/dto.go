package attendance

import (
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	TimeIn     *string `json:"time_in,omitempty"`
	TimeOut    *string `json:"time_out,omitempty"`
	IsPresent  bool    `json:"is_present"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	errs = append(errs, validateTimePair(r.TimeIn, r.TimeOut)...)
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, []string{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Present, Absent, Late, Half-Day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	TimeIn    *string `json:"time_in,omitempty"`
	TimeOut   *string `json:"time_out,omitempty"`
	IsPresent bool    `json:"is_present"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateTimePair(r.TimeIn, r.TimeOut)...)
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, []string{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Present, Absent, Late, Half-Day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateTimePair(timeIn, timeOut *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if timeIn != nil {
		if _, ok := validator.IsValidDateTime(*timeIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_in", Message: "time_in must be an ISO8601 timestamp"})
		}
	}
	if timeOut != nil {
		if _, ok := validator.IsValidDateTime(*timeOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_out", Message: "time_out must be an ISO8601 timestamp"})
		}
	}
	return errs
}

type AttendanceResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  *string    `json:"employee_name,omitempty"`
	Date          time.Time  `json:"date"`
	TimeIn        *time.Time `json:"time_in,omitempty"`
	TimeOut       *time.Time `json:"time_out,omitempty"`
	IsPresent     bool       `json:"is_present"`
	Status        string     `json:"status"`
	WorkHours     *float64   `json:"work_hours,omitempty"`
	IsOvertime    bool       `json:"is_overtime"`
	OvertimeHours *float64   `json:"overtime_hours,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Date:          a.Date,
		TimeIn:        a.TimeIn,
		TimeOut:       a.TimeOut,
		IsPresent:     a.IsPresent,
		Status:        a.Status,
		WorkHours:     a.WorkHours,
		IsOvertime:    a.IsOvertime,
		OvertimeHours: a.OvertimeHours,
		Notes:         a.Notes,
	}
}

type SummaryResponse struct {
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	WorkingDays        int     `json:"working_days"`
	PresentDays        int     `json:"present_days"`
	AbsentDays         int     `json:"absent_days"`
	LateDays           int     `json:"late_days"`
	TotalWorkHours     float64 `json:"total_work_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	AttendanceRate     float64 `json:"attendance_rate"`
}
