package role

import "time"

// Role is a named bundle of permissions. System roles are immutable and
// non-deletable; the default role is assigned to newly registered users.
type Role struct {
	ID          string
	Name        string
	Description string
	IsDefault   bool
	IsSystem    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// Resolved for responses
	Permissions []Permission
	UserCount   int64
}

// Known permission modules and actions. The permissions table is seeded with
// the cross product of these.
const (
	ModuleDashboard  = "Dashboard"
	ModuleEmployee   = "Employee"
	ModuleLeave      = "Leave"
	ModuleClaim      = "Claim"
	ModuleAttendance = "Attendance"
	ModuleSettings   = "Settings"

	ActionView    = "View"
	ActionCreate  = "Create"
	ActionEdit    = "Edit"
	ActionDelete  = "Delete"
	ActionApprove = "Approve"
)

// Permission is an atomic capability: one action on one module.
type Permission struct {
	ID          string
	Name        string
	Description string
	Module      string
	Action      string
}

// RoleUser is a user listed under a role.
type RoleUser struct {
	UserID    string
	Username  string
	Email     string
	FirstName string
	LastName  string
}
