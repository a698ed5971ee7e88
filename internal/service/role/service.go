package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/domain/user"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
	"github.com/workforcehq/hrm-backend-go/internal/repository/postgresql"
)

type Service struct {
	db database.TxBeginner
	role.RoleRepository
	role.PermissionRepository
	role.UserRoleRepository
	user.UserRepository
}

func NewService(
	db database.TxBeginner,
	roleRepository role.RoleRepository,
	permissionRepository role.PermissionRepository,
	userRoleRepository role.UserRoleRepository,
	userRepository user.UserRepository,
) *Service {
	return &Service{
		db:                   db,
		RoleRepository:       roleRepository,
		PermissionRepository: permissionRepository,
		UserRoleRepository:   userRoleRepository,
		UserRepository:       userRepository,
	}
}

// Create adds a custom role. Roles created through the API are never system
// roles.
func (s *Service) Create(ctx context.Context, req role.CreateRoleRequest) (role.Role, error) {
	if _, err := s.RoleRepository.GetByName(ctx, req.Name); err == nil {
		return role.Role{}, role.ErrRoleNameTaken
	} else if !errors.Is(err, role.ErrRoleNotFound) {
		return role.Role{}, fmt.Errorf("failed to check role name: %w", err)
	}

	if err := s.checkPermissionIDs(ctx, req.PermissionIDs); err != nil {
		return role.Role{}, err
	}

	var created role.Role
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.RoleRepository.Create(txCtx, role.Role{
			Name:        req.Name,
			Description: req.Description,
			IsDefault:   req.IsDefault,
		})
		if err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}

		if len(req.PermissionIDs) > 0 {
			if err := s.RoleRepository.ReplacePermissions(txCtx, created.ID, req.PermissionIDs); err != nil {
				return fmt.Errorf("failed to set role permissions: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return role.Role{}, err
	}

	return s.RoleRepository.GetByID(ctx, created.ID)
}

func (s *Service) Get(ctx context.Context, id string) (role.Role, error) {
	return s.RoleRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]role.Role, error) {
	return s.RoleRepository.List(ctx)
}

// Update edits a role and replaces its permission set. System roles are
// immutable.
func (s *Service) Update(ctx context.Context, id string, req role.UpdateRoleRequest) (role.Role, error) {
	existing, err := s.RoleRepository.GetByID(ctx, id)
	if err != nil {
		return role.Role{}, err
	}
	if existing.IsSystem {
		return role.Role{}, role.ErrSystemRoleImmutable
	}

	if other, err := s.RoleRepository.GetByName(ctx, req.Name); err == nil && other.ID != id {
		return role.Role{}, role.ErrRoleNameTaken
	} else if err != nil && !errors.Is(err, role.ErrRoleNotFound) {
		return role.Role{}, fmt.Errorf("failed to check role name: %w", err)
	}

	if err := s.checkPermissionIDs(ctx, req.PermissionIDs); err != nil {
		return role.Role{}, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.IsDefault = req.IsDefault

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.RoleRepository.Update(txCtx, existing); err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		if err := s.RoleRepository.ReplacePermissions(txCtx, id, req.PermissionIDs); err != nil {
			return fmt.Errorf("failed to replace role permissions: %w", err)
		}
		return nil
	})
	if err != nil {
		return role.Role{}, err
	}

	return s.RoleRepository.GetByID(ctx, id)
}

// Delete removes a custom role. System roles and roles still assigned to
// users are protected.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.RoleRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsSystem {
		return role.ErrSystemRoleImmutable
	}

	count, err := s.UserRoleRepository.CountByRole(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count role users: %w", err)
	}
	if count > 0 {
		return role.ErrRoleInUse
	}

	return s.RoleRepository.Delete(ctx, id)
}

// Assign grants a role to a user.
func (s *Service) Assign(ctx context.Context, req role.AssignRoleRequest) error {
	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		return err
	}
	if _, err := s.RoleRepository.GetByID(ctx, req.RoleID); err != nil {
		return err
	}
	return s.UserRoleRepository.Assign(ctx, req.UserID, req.RoleID)
}

// Remove revokes a role from a user. A user always keeps at least one role.
func (s *Service) Remove(ctx context.Context, userID, roleID string) error {
	exists, err := s.UserRoleRepository.Exists(ctx, userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to check role assignment: %w", err)
	}
	if !exists {
		return role.ErrAssignmentNotFound
	}

	count, err := s.UserRoleRepository.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count user roles: %w", err)
	}
	if count <= 1 {
		return role.ErrLastRole
	}

	return s.UserRoleRepository.Remove(ctx, userID, roleID)
}

// UsersInRole lists the users holding a role.
func (s *Service) UsersInRole(ctx context.Context, roleID string) ([]role.RoleUser, error) {
	if _, err := s.RoleRepository.GetByID(ctx, roleID); err != nil {
		return nil, err
	}
	return s.UserRoleRepository.ListUsersInRole(ctx, roleID)
}

// ListPermissions returns the full permission catalog.
func (s *Service) ListPermissions(ctx context.Context) ([]role.Permission, error) {
	return s.PermissionRepository.List(ctx)
}

func (s *Service) checkPermissionIDs(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.PermissionRepository.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
