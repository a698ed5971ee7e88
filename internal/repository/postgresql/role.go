package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func (r *roleRepositoryImpl) getOne(ctx context.Context, where string, arg any) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.name, r.description, r.is_default, r.is_system, r.created_at, r.updated_at,
			   (SELECT COUNT(*) FROM user_roles WHERE role_id = r.id) AS user_count
		FROM roles r
		WHERE ` + where

	var rl role.Role
	err := q.QueryRow(ctx, query, arg).Scan(
		&rl.ID, &rl.Name, &rl.Description, &rl.IsDefault, &rl.IsSystem,
		&rl.CreatedAt, &rl.UpdatedAt, &rl.UserCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}

	permissions, err := r.ListPermissions(ctx, rl.ID)
	if err != nil {
		return role.Role{}, err
	}
	rl.Permissions = permissions

	return rl, nil
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, rl role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (name, description, is_default, is_system)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, is_default, is_system, created_at, updated_at
	`

	var created role.Role
	err := q.QueryRow(ctx, query, rl.Name, rl.Description, rl.IsDefault, rl.IsSystem).Scan(
		&created.ID, &created.Name, &created.Description,
		&created.IsDefault, &created.IsSystem,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return role.Role{}, err
	}

	return created, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	return r.getOne(ctx, `r.id = $1`, id)
}

// GetByName implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByName(ctx context.Context, name string) (role.Role, error) {
	return r.getOne(ctx, `LOWER(r.name) = LOWER($1)`, name)
}

// GetDefault implements role.RoleRepository.
func (r *roleRepositoryImpl) GetDefault(ctx context.Context) (role.Role, error) {
	return r.getOne(ctx, `r.is_default = $1`, true)
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.name, r.description, r.is_default, r.is_system, r.created_at, r.updated_at,
			   (SELECT COUNT(*) FROM user_roles WHERE role_id = r.id) AS user_count
		FROM roles r
		ORDER BY r.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]role.Role, 0)
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(
			&rl.ID, &rl.Name, &rl.Description, &rl.IsDefault, &rl.IsSystem,
			&rl.CreatedAt, &rl.UpdatedAt, &rl.UserCount,
		); err != nil {
			return nil, err
		}
		roles = append(roles, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range roles {
		permissions, err := r.ListPermissions(ctx, roles[i].ID)
		if err != nil {
			return nil, err
		}
		roles[i].Permissions = permissions
	}

	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, rl role.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET name = $1, description = $2, is_default = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, rl.Name, rl.Description, rl.IsDefault, rl.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}

// ReplacePermissions implements role.RoleRepository.
func (r *roleRepositoryImpl) ReplacePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return err
	}

	for _, permissionID := range permissionIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)
			 ON CONFLICT (role_id, permission_id) DO NOTHING`,
			roleID, permissionID,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// ListPermissions implements role.RoleRepository.
func (r *roleRepositoryImpl) ListPermissions(ctx context.Context, roleID string) ([]role.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.module, p.action
		FROM permissions p
		JOIN role_permissions rp ON p.id = rp.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.module, p.action
	`

	rows, err := q.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := make([]role.Permission, 0)
	for rows.Next() {
		var p role.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Module, &p.Action); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}

	return permissions, nil
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

type permissionRepositoryImpl struct {
	db *database.DB
}

// GetByID implements role.PermissionRepository.
func (r *permissionRepositoryImpl) GetByID(ctx context.Context, id string) (role.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, module, action
		FROM permissions
		WHERE id = $1
	`

	var p role.Permission
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Module, &p.Action)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Permission{}, role.ErrPermissionNotFound
		}
		return role.Permission{}, err
	}

	return p, nil
}

// List implements role.PermissionRepository.
func (r *permissionRepositoryImpl) List(ctx context.Context) ([]role.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, module, action
		FROM permissions
		ORDER BY module, action
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := make([]role.Permission, 0)
	for rows.Next() {
		var p role.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Module, &p.Action); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}

	return permissions, nil
}

// HasPermission implements role.PermissionRepository.
func (r *permissionRepositoryImpl) HasPermission(ctx context.Context, userID, module, action string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM user_roles ur
			JOIN role_permissions rp ON ur.role_id = rp.role_id
			JOIN permissions p ON rp.permission_id = p.id
			WHERE ur.user_id = $1 AND p.module = $2 AND p.action = $3
		)
	`

	var granted bool
	if err := q.QueryRow(ctx, query, userID, module, action).Scan(&granted); err != nil {
		return false, err
	}

	return granted, nil
}

func NewPermissionRepository(db *database.DB) role.PermissionRepository {
	return &permissionRepositoryImpl{db: db}
}

type userRoleRepositoryImpl struct {
	db *database.DB
}

// Assign implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) Assign(ctx context.Context, userID, roleID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, role_id) DO NOTHING`,
		userID, roleID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleAlreadyAssigned
	}

	return nil
}

// Remove implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) Remove(ctx context.Context, userID, roleID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`,
		userID, roleID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrAssignmentNotFound
	}

	return nil
}

// Exists implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) Exists(ctx context.Context, userID, roleID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role_id = $2)`,
		userID, roleID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// CountByUser implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM user_roles WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByRole implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) CountByRole(ctx context.Context, roleID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM user_roles WHERE role_id = $1`, roleID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ListUsersInRole implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) ListUsersInRole(ctx context.Context, roleID string) ([]role.RoleUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.email, u.first_name, u.last_name
		FROM users u
		JOIN user_roles ur ON u.id = ur.user_id
		WHERE ur.role_id = $1
		ORDER BY u.username
	`

	rows, err := q.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]role.RoleUser, 0)
	for rows.Next() {
		var u role.RoleUser
		if err := rows.Scan(&u.UserID, &u.Username, &u.Email, &u.FirstName, &u.LastName); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

func NewUserRoleRepository(db *database.DB) role.UserRoleRepository {
	return &userRoleRepositoryImpl{db: db}
}
