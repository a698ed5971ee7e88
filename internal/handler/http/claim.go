package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/claim"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
	claimservice "github.com/workforcehq/hrm-backend-go/internal/service/claim"
)

type ClaimHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
}

type ClaimHandlerImpl struct {
	claimService *claimservice.Service
}

func NewClaimHandler(claimService *claimservice.Service) ClaimHandler {
	return &ClaimHandlerImpl{claimService: claimService}
}

// Submit implements ClaimHandler.
func (h *ClaimHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var createReq claim.CreateClaimRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("SubmitClaim decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.claimService.Submit(r.Context(), createReq)
	if err != nil {
		slog.Error("SubmitClaim service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Claim submitted", claim.ToResponse(c))
}

// List implements ClaimHandler.
func (h *ClaimHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, err := h.claimService.List(r.Context())
	if err != nil {
		slog.Error("ListClaims service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]claim.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		resp = append(resp, claim.ToResponse(c))
	}
	response.Success(w, resp)
}

// ListMine implements ClaimHandler.
func (h *ClaimHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := h.claimService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMyClaims service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]claim.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		resp = append(resp, claim.ToResponse(c))
	}
	response.Success(w, resp)
}

// Get implements ClaimHandler.
func (h *ClaimHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.claimService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, claim.ToResponse(c))
}

// Decide implements ClaimHandler.
func (h *ClaimHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
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

	var decideReq claim.DecideClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("DecideClaim decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := decideReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.claimService.Decide(r.Context(), id, approverID, decideReq)
	if err != nil {
		slog.Error("DecideClaim service error", "error", err, "claim_id", id)
		response.HandleError(w, err)
		return
	}

	message := "Claim rejected"
	if decideReq.Approved {
		message = "Claim approved"
	}
	response.SuccessWithMessage(w, message, claim.ToResponse(c))
}

// Cancel implements ClaimHandler.
func (h *ClaimHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.claimService.Cancel(r.Context(), id); err != nil {
		slog.Error("CancelClaim service error", "error", err, "claim_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Claim cancelled", nil)
}

// Summary implements ClaimHandler.
func (h *ClaimHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.claimService.Summary(r.Context())
	if err != nil {
		slog.Error("ClaimSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ListTypes implements ClaimHandler.
func (h *ClaimHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.claimService.ListTypes(r.Context())
	if err != nil {
		slog.Error("ListClaimTypes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]claim.ClaimTypeResponse, 0, len(types))
	for _, ct := range types {
		resp = append(resp, claim.ToTypeResponse(ct))
	}
	response.Success(w, resp)
}
