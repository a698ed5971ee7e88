package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/leave"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
	leaveservice "github.com/workforcehq/hrm-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveservice.Service
}

func NewLeaveHandler(leaveService *leaveservice.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("SubmitLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	lv, err := h.leaveService.Submit(r.Context(), createReq)
	if err != nil {
		slog.Error("SubmitLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", leave.ToResponse(lv))
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.List(r.Context())
	if err != nil {
		slog.Error("ListLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, leave.ToResponse(l))
	}
	response.Success(w, resp)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMyLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, leave.ToResponse(l))
	}
	response.Success(w, resp)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lv, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToResponse(lv))
}

// Decide implements LeaveHandler. The caller's employee record is the
// approver.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cu, err := identity.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	approverID, err := cu.RequireEmployee()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var decideReq leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("DecideLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := decideReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	lv, err := h.leaveService.Decide(r.Context(), id, approverID, decideReq)
	if err != nil {
		slog.Error("DecideLeave service error", "error", err, "leave_id", id)
		response.HandleError(w, err)
		return
	}

	message := "Leave request rejected"
	if decideReq.Approved {
		message = "Leave request approved"
	}
	response.SuccessWithMessage(w, message, leave.ToResponse(lv))
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Cancel(r.Context(), id); err != nil {
		slog.Error("CancelLeave service error", "error", err, "leave_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}

// Balances implements LeaveHandler.
func (h *LeaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.leaveService.Balances(r.Context())
	if err != nil {
		slog.Error("LeaveBalances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// ListTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.ListTypes(r.Context())
	if err != nil {
		slog.Error("ListLeaveTypes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		resp = append(resp, leave.ToTypeResponse(lt))
	}
	response.Success(w, resp)
}

// CreateType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var typeReq leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&typeReq); err != nil {
		slog.Error("CreateLeaveType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := typeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	lt, err := h.leaveService.CreateType(r.Context(), typeReq)
	if err != nil {
		slog.Error("CreateLeaveType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created", leave.ToTypeResponse(lt))
}

// UpdateType implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var typeReq leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&typeReq); err != nil {
		slog.Error("UpdateLeaveType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := typeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	lt, err := h.leaveService.UpdateType(r.Context(), id, typeReq)
	if err != nil {
		slog.Error("UpdateLeaveType service error", "error", err, "leave_type_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated", leave.ToTypeResponse(lt))
}

// DeleteType implements LeaveHandler.
func (h *LeaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.DeleteType(r.Context(), id); err != nil {
		slog.Error("DeleteLeaveType service error", "error", err, "leave_type_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted", nil)
}
