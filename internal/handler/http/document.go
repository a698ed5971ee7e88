package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/document"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
	documentservice "github.com/workforcehq/hrm-backend-go/internal/service/document"
)

type DocumentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPublic(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	documentService *documentservice.Service
}

func NewDocumentHandler(documentService *documentservice.Service) DocumentHandler {
	return &DocumentHandlerImpl{documentService: documentService}
}

// Create implements DocumentHandler. Registers metadata for a file that
// already lives somewhere reachable by URL.
func (h *DocumentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq document.CreateDocumentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDocument decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.documentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document created", document.ToResponse(doc))
}

// Upload implements DocumentHandler. Accepts multipart form data with the
// file under "file" and metadata in the remaining fields.
func (h *DocumentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("UploadDocument parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required", nil)
		return
	}
	defer file.Close()

	uploadReq := document.CreateDocumentRequest{
		Name:         r.FormValue("name"),
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		DocumentType: r.FormValue("document_type"),
		IsPublic:     r.FormValue("is_public") == "true",
		Tags:         r.FormValue("tags"),
	}
	if expiry := r.FormValue("expiry_date"); expiry != "" {
		uploadReq.ExpiryDate = &expiry
	}

	doc, err := h.documentService.Upload(r.Context(), uploadReq, file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		slog.Error("UploadDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded", document.ToResponse(doc))
}

// Get implements DocumentHandler.
func (h *DocumentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.documentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, document.ToResponse(doc))
}

// List implements DocumentHandler.
func (h *DocumentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.List(r.Context())
	if err != nil {
		slog.Error("ListDocuments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toDocumentResponses(docs))
}

// ListMine implements DocumentHandler.
func (h *DocumentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMyDocuments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toDocumentResponses(docs))
}

// ListPublic implements DocumentHandler.
func (h *DocumentHandlerImpl) ListPublic(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListPublic(r.Context())
	if err != nil {
		slog.Error("ListPublicDocuments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toDocumentResponses(docs))
}

// Search implements DocumentHandler.
func (h *DocumentHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		response.BadRequest(w, "q query parameter is required", nil)
		return
	}

	docs, err := h.documentService.Search(r.Context(), term)
	if err != nil {
		slog.Error("SearchDocuments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toDocumentResponses(docs))
}

// Update implements DocumentHandler.
func (h *DocumentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq document.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateDocument decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.documentService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateDocument service error", "error", err, "document_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document updated", document.ToResponse(doc))
}

// Delete implements DocumentHandler.
func (h *DocumentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteDocument service error", "error", err, "document_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted", nil)
}

func toDocumentResponses(docs []document.Document) []document.DocumentResponse {
	resp := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, document.ToResponse(d))
	}
	return resp
}
