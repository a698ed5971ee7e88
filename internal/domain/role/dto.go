package role

import (
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type CreateRoleRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	IsDefault     bool     `json:"is_default"`
	PermissionIDs []string `json:"permission_ids,omitempty"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 50 characters"})
	}
	if len(r.Description) > 500 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	IsDefault     bool     `json:"is_default"`
	PermissionIDs []string `json:"permission_ids,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	c := CreateRoleRequest{Name: r.Name, Description: r.Description}
	return c.Validate()
}

type AssignRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{Field: "role_id", Message: "role_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	IsDefault   bool                 `json:"is_default"`
	IsSystem    bool                 `json:"is_system"`
	UserCount   int64                `json:"user_count"`
	Permissions []PermissionResponse `json:"permissions,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type PermissionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Module      string `json:"module"`
	Action      string `json:"action"`
}

type RoleUserResponse struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func ToResponse(r Role) RoleResponse {
	resp := RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsDefault:   r.IsDefault,
		IsSystem:    r.IsSystem,
		UserCount:   r.UserCount,
		CreatedAt:   r.CreatedAt,
	}
	for _, p := range r.Permissions {
		resp.Permissions = append(resp.Permissions, ToPermissionResponse(p))
	}
	return resp
}

func ToPermissionResponse(p Permission) PermissionResponse {
	return PermissionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Module:      p.Module,
		Action:      p.Action,
	}
}

func ToRoleUserResponse(u RoleUser) RoleUserResponse {
	return RoleUserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
