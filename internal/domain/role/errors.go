package role

import "errors"

var (
	ErrRoleNotFound        = errors.New("role not found")
	ErrPermissionNotFound  = errors.New("permission not found")
	ErrRoleNameTaken       = errors.New("a role with this name already exists")
	ErrSystemRoleImmutable = errors.New("system roles cannot be modified or deleted")
	ErrRoleInUse           = errors.New("cannot delete a role that is assigned to users")
	ErrRoleAlreadyAssigned = errors.New("user already has this role")
	ErrAssignmentNotFound  = errors.New("user does not have this role")
	ErrLastRole            = errors.New("cannot remove the user's only role")
)
