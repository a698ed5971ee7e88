package leave

import (
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "leave_type_id is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	Approved bool    `json:"approved"`
	Comments *string `json:"comments,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	if r.Comments != nil && len(*r.Comments) > 500 {
		return validator.ValidationErrors{{Field: "comments", Message: "comments must not exceed 500 characters"}}
	}
	return nil
}

type CreateLeaveTypeRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	DefaultDays      int    `json:"default_days"`
	RequiresApproval bool   `json:"requires_approval"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 50 characters"})
	}
	if r.DefaultDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "default_days", Message: "default_days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	EmployeeName   *string    `json:"employee_name,omitempty"`
	LeaveTypeID    string     `json:"leave_type_id"`
	LeaveTypeName  *string    `json:"leave_type_name,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Days           int        `json:"days"`
	Reason         string     `json:"reason,omitempty"`
	Status         Status     `json:"status"`
	ApprovedByID   *string    `json:"approved_by_id,omitempty"`
	ApprovedByName *string    `json:"approved_by_name,omitempty"`
	ApprovalDate   *time.Time `json:"approval_date,omitempty"`
	Comments       *string    `json:"comments,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:             l.ID,
		EmployeeID:     l.EmployeeID,
		EmployeeName:   l.EmployeeName,
		LeaveTypeID:    l.LeaveTypeID,
		LeaveTypeName:  l.LeaveTypeName,
		StartDate:      l.StartDate,
		EndDate:        l.EndDate,
		Days:           l.Days(),
		Reason:         l.Reason,
		Status:         l.Status,
		ApprovedByID:   l.ApprovedByID,
		ApprovedByName: l.ApprovedByName,
		ApprovalDate:   l.ApprovalDate,
		Comments:       l.Comments,
		CreatedAt:      l.CreatedAt,
	}
}

type LeaveTypeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	DefaultDays      int    `json:"default_days"`
	RequiresApproval bool   `json:"requires_approval"`
}

func ToTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:               lt.ID,
		Name:             lt.Name,
		Description:      lt.Description,
		DefaultDays:      lt.DefaultDays,
		RequiresApproval: lt.RequiresApproval,
	}
}

// BalanceResponse is either a persisted balance row or, when none exists yet
// for the year, a synthesized default with an empty ID.
type BalanceResponse struct {
	ID            string `json:"id,omitempty"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	AllottedDays  int    `json:"allotted_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
	Year          int    `json:"year"`
}
