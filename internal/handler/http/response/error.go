package response

import (
	"errors"
	"net/http"

	"github.com/workforcehq/hrm-backend-go/internal/domain/announcement"
	"github.com/workforcehq/hrm-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hrm-backend-go/internal/domain/auth"
	"github.com/workforcehq/hrm-backend-go/internal/domain/claim"
	"github.com/workforcehq/hrm-backend-go/internal/domain/department"
	"github.com/workforcehq/hrm-backend-go/internal/domain/document"
	"github.com/workforcehq/hrm-backend-go/internal/domain/employee"
	"github.com/workforcehq/hrm-backend-go/internal/domain/holiday"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/leave"
	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/domain/setting"
	"github.com/workforcehq/hrm-backend-go/internal/domain/user"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and identity
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, identity.ErrNoIdentity):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, identity.ErrNoEmployeeRecord):
		NotFound(w, "No employee record for this user")
	case errors.Is(err, identity.ErrNotResourceOwner):
		Forbidden(w, "You do not have access to this resource")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employees and departments
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrProfileExists):
		Conflict(w, "User already has an employee record")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Cannot delete department with employees")

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Not clocked in today", nil)
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this date")

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date cannot be after end date", nil)
	case errors.Is(err, leave.ErrStartDateInPast):
		BadRequest(w, "Cannot apply for leave in the past", nil)

	// Claims
	case errors.Is(err, claim.ErrClaimNotFound):
		NotFound(w, "Claim not found")
	case errors.Is(err, claim.ErrClaimTypeNotFound):
		NotFound(w, "Claim type not found")
	case errors.Is(err, claim.ErrAlreadyProcessed):
		Conflict(w, "Claim already processed")
	case errors.Is(err, claim.ErrInvalidAmount):
		BadRequest(w, "Amount must be greater than zero", nil)
	case errors.Is(err, claim.ErrAmountExceedsLimit):
		BadRequest(w, "Amount exceeds maximum allowed for this claim type", nil)
	case errors.Is(err, claim.ErrClaimDateInFuture):
		BadRequest(w, "Claim date cannot be in the future", nil)
	case errors.Is(err, claim.ErrReceiptRequired):
		BadRequest(w, "Receipt is required for this claim type", nil)

	// Documents
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrFileURLRequired):
		BadRequest(w, "File URL is required", nil)

	// Roles and permissions
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrPermissionNotFound):
		NotFound(w, "Permission not found")
	case errors.Is(err, role.ErrAssignmentNotFound):
		NotFound(w, "User does not have this role")
	case errors.Is(err, role.ErrRoleNameTaken):
		Conflict(w, "A role with this name already exists")
	case errors.Is(err, role.ErrRoleAlreadyAssigned):
		Conflict(w, "User already has this role")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Cannot delete a role that is assigned to users")
	case errors.Is(err, role.ErrSystemRoleImmutable):
		Forbidden(w, "System roles cannot be modified or deleted")
	case errors.Is(err, role.ErrLastRole):
		BadRequest(w, "Cannot remove the user's only role", nil)

	// Settings
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")
	case errors.Is(err, setting.ErrKeyTaken):
		Conflict(w, "A setting with this key already exists")
	case errors.Is(err, setting.ErrReadOnly):
		Forbidden(w, "Setting is read-only")
	case errors.Is(err, setting.ErrInvalidValue):
		BadRequest(w, "Value does not match the declared type", nil)

	// Announcements and holidays
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
