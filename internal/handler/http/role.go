package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
	roleservice "github.com/workforcehq/hrm-backend-go/internal/service/role"
)

type RoleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	UsersInRole(w http.ResponseWriter, r *http.Request)
	ListPermissions(w http.ResponseWriter, r *http.Request)
}

type RoleHandlerImpl struct {
	roleService *roleservice.Service
}

func NewRoleHandler(roleService *roleservice.Service) RoleHandler {
	return &RoleHandlerImpl{roleService: roleService}
}

// Create implements RoleHandler.
func (h *RoleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq role.CreateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.roleService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role created", role.ToResponse(created))
}

// List implements RoleHandler.
func (h *RoleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.List(r.Context())
	if err != nil {
		slog.Error("ListRoles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]role.RoleResponse, 0, len(roles))
	for _, rl := range roles {
		resp = append(resp, role.ToResponse(rl))
	}
	response.Success(w, resp)
}

// Get implements RoleHandler.
func (h *RoleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rl, err := h.roleService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, role.ToResponse(rl))
}

// Update implements RoleHandler.
func (h *RoleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rl, err := h.roleService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateRole service error", "error", err, "role_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated", role.ToResponse(rl))
}

// Delete implements RoleHandler.
func (h *RoleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.roleService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteRole service error", "error", err, "role_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role deleted", nil)
}

// Assign implements RoleHandler.
func (h *RoleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq role.AssignRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := assignReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.roleService.Assign(r.Context(), assignReq); err != nil {
		slog.Error("AssignRole service error", "error", err, "user_id", assignReq.UserID, "role_id", assignReq.RoleID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role assigned", nil)
}

// Remove implements RoleHandler.
func (h *RoleHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userID")

	if err := h.roleService.Remove(r.Context(), userID, roleID); err != nil {
		slog.Error("RemoveRole service error", "error", err, "user_id", userID, "role_id", roleID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role removed", nil)
}

// UsersInRole implements RoleHandler.
func (h *RoleHandlerImpl) UsersInRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	users, err := h.roleService.UsersInRole(r.Context(), id)
	if err != nil {
		slog.Error("UsersInRole service error", "error", err, "role_id", id)
		response.HandleError(w, err)
		return
	}

	resp := make([]role.RoleUserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, role.ToRoleUserResponse(u))
	}
	response.Success(w, resp)
}

// ListPermissions implements RoleHandler.
func (h *RoleHandlerImpl) ListPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.roleService.ListPermissions(r.Context())
	if err != nil {
		slog.Error("ListPermissions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]role.PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		resp = append(resp, role.ToPermissionResponse(p))
	}
	response.Success(w, resp)
}
