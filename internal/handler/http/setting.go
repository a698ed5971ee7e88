package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/setting"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
	settingservice "github.com/workforcehq/hrm-backend-go/internal/service/setting"
)

type SettingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByKey(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SettingHandlerImpl struct {
	settingService *settingservice.Service
}

func NewSettingHandler(settingService *settingservice.Service) SettingHandler {
	return &SettingHandlerImpl{settingService: settingService}
}

// Create implements SettingHandler.
func (h *SettingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq setting.CreateSettingRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateSetting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	s, err := h.settingService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateSetting service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Setting created", setting.ToResponse(s))
}

// List implements SettingHandler. An optional category query parameter
// narrows the result.
func (h *SettingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		settings []setting.Setting
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		settings, err = h.settingService.ListByCategory(r.Context(), category)
	} else {
		settings, err = h.settingService.List(r.Context())
	}
	if err != nil {
		slog.Error("ListSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]setting.SettingResponse, 0, len(settings))
	for _, s := range settings {
		resp = append(resp, setting.ToResponse(s))
	}
	response.Success(w, resp)
}

// Get implements SettingHandler.
func (h *SettingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, err := h.settingService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, setting.ToResponse(s))
}

// GetByKey implements SettingHandler.
func (h *SettingHandlerImpl) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	s, err := h.settingService.GetByKey(r.Context(), key)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, setting.ToResponse(s))
}

// ListCategories implements SettingHandler.
func (h *SettingHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.settingService.ListCategories(r.Context())
	if err != nil {
		slog.Error("ListSettingCategories service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, categories)
}

// Update implements SettingHandler.
func (h *SettingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq setting.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateSetting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	s, err := h.settingService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateSetting service error", "error", err, "setting_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting updated", setting.ToResponse(s))
}

// Delete implements SettingHandler.
func (h *SettingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.settingService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteSetting service error", "error", err, "setting_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting deleted", nil)
}
