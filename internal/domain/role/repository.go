package role

import "context"

// RoleRepository - interface for the roles and role_permissions tables
type RoleRepository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	GetByName(ctx context.Context, name string) (Role, error)
	GetDefault(ctx context.Context) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, r Role) error
	Delete(ctx context.Context, id string) error

	// ReplacePermissions removes every role_permissions row for the role and
	// inserts the provided set. A full replace, not a diff.
	ReplacePermissions(ctx context.Context, roleID string, permissionIDs []string) error
	ListPermissions(ctx context.Context, roleID string) ([]Permission, error)
}

// PermissionRepository - interface for the permissions table
type PermissionRepository interface {
	GetByID(ctx context.Context, id string) (Permission, error)
	List(ctx context.Context) ([]Permission, error)
	// HasPermission reports whether any of the user's roles grants the
	// (module, action) capability.
	HasPermission(ctx context.Context, userID, module, action string) (bool, error)
}

// UserRoleRepository - interface for the user_roles table
type UserRoleRepository interface {
	Assign(ctx context.Context, userID, roleID string) error
	Remove(ctx context.Context, userID, roleID string) error
	Exists(ctx context.Context, userID, roleID string) (bool, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByRole(ctx context.Context, roleID string) (int64, error)
	ListUsersInRole(ctx context.Context, roleID string) ([]RoleUser, error)
}
