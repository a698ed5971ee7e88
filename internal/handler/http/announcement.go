package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/announcement"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
	announcementservice "github.com/workforcehq/hrm-backend-go/internal/service/announcement"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService *announcementservice.Service
}

func NewAnnouncementHandler(announcementService *announcementservice.Service) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq announcement.CreateAnnouncementRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	a, err := h.announcementService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateAnnouncement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", announcement.ToResponse(a))
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		slog.Error("ListAnnouncements service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, announcement.ToResponse(a))
	}
	response.Success(w, resp)
}

// ListActive implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.ListActive(r.Context())
	if err != nil {
		slog.Error("ListActiveAnnouncements service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, announcement.ToResponse(a))
	}
	response.Success(w, resp)
}

// Get implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := h.announcementService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcement.ToResponse(a))
}

// Update implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq announcement.UpdateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	a, err := h.announcementService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateAnnouncement service error", "error", err, "announcement_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement updated", announcement.ToResponse(a))
}

// Delete implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteAnnouncement service error", "error", err, "announcement_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}
