package document

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/workforcehq/hrm-backend-go/internal/domain/document"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/storage"
)

type Service struct {
	db      database.TxBeginner
	storage storage.FileStorage
	document.DocumentRepository
}

func NewService(db database.TxBeginner, fileStorage storage.FileStorage, documentRepository document.DocumentRepository) *Service {
	return &Service{
		db:                 db,
		storage:            fileStorage,
		DocumentRepository: documentRepository,
	}
}

// Create registers document metadata for the caller. The file itself was
// either uploaded beforehand (file_url in the request) or arrives through
// Upload.
func (s *Service) Create(ctx context.Context, req document.CreateDocumentRequest) (document.Document, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return document.Document{}, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return document.Document{}, err
	}

	if req.FileURL == "" {
		return document.Document{}, document.ErrFileURLRequired
	}

	d := document.Document{
		EmployeeID:   employeeID,
		Name:         req.Name,
		Title:        req.Title,
		Description:  req.Description,
		DocumentType: req.DocumentType,
		FilePath:     req.FilePath,
		FileURL:      req.FileURL,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		IsPublic:     req.IsPublic,
		Tags:         req.Tags,
		Status:       document.StatusActive,
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return document.Document{}, fmt.Errorf("failed to parse expiry date: %w", err)
		}
		d.ExpiryDate = &expiry
	}

	created, err := s.DocumentRepository.Create(ctx, d)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return s.DocumentRepository.GetByID(ctx, created.ID)
}

// Upload stores the file bytes and registers the metadata in one call.
func (s *Service) Upload(ctx context.Context, req document.CreateDocumentRequest, file io.Reader, filename string, size int64) (document.Document, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return document.Document{}, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return document.Document{}, err
	}

	ext := filepath.Ext(filename)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := filepath.Join("documents", employeeID, uuid.New().String()+ext)
	storedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to store file: %w", err)
	}

	req.FilePath = storedPath
	req.FileURL = s.storage.URL(storedPath)
	req.FileType = contentType
	req.FileSize = size
	if req.Name == "" {
		req.Name = filename
	}

	return s.Create(ctx, req)
}

// Get returns a document the caller is allowed to see: public ones, their
// own, or anything for admins.
func (s *Service) Get(ctx context.Context, id string) (document.Document, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return document.Document{}, err
	}

	d, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return document.Document{}, err
	}
	if !s.canSee(cu, d) {
		return document.Document{}, identity.ErrNotResourceOwner
	}

	return d, nil
}

// List returns every document for admins, and public-or-own for others.
func (s *Service) List(ctx context.Context) ([]document.Document, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if cu.IsAdmin {
		return s.DocumentRepository.List(ctx)
	}
	return s.DocumentRepository.Search(ctx, document.SearchFilter{
		PublicOnly: true,
		EmployeeID: cu.EmployeeID,
	})
}

// ListMine returns the caller's own documents.
func (s *Service) ListMine(ctx context.Context) ([]document.Document, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return nil, err
	}
	return s.DocumentRepository.ListByEmployee(ctx, employeeID)
}

// ListPublic returns active public documents.
func (s *Service) ListPublic(ctx context.Context) ([]document.Document, error) {
	docs, err := s.DocumentRepository.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	active := docs[:0]
	for _, d := range docs {
		if d.Status == document.StatusActive {
			active = append(active, d)
		}
	}
	return active, nil
}

// Search filters by term across name, title, description and tags, scoped
// to what the caller may see.
func (s *Service) Search(ctx context.Context, term string) ([]document.Document, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := document.SearchFilter{Term: term}
	if !cu.IsAdmin {
		filter.PublicOnly = true
		filter.EmployeeID = cu.EmployeeID
	}

	return s.DocumentRepository.Search(ctx, filter)
}

// Update edits metadata. Only the owner or an admin may update.
func (s *Service) Update(ctx context.Context, id string, req document.UpdateDocumentRequest) (document.Document, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return document.Document{}, err
	}

	d, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return document.Document{}, err
	}
	if !s.canModify(cu, d) {
		return document.Document{}, identity.ErrNotResourceOwner
	}

	d.Title = req.Title
	d.Description = req.Description
	d.IsPublic = req.IsPublic
	d.Tags = req.Tags
	if req.Status != "" {
		d.Status = req.Status
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return document.Document{}, fmt.Errorf("failed to parse expiry date: %w", err)
		}
		d.ExpiryDate = &expiry
	}

	if err := s.DocumentRepository.Update(ctx, d); err != nil {
		return document.Document{}, fmt.Errorf("failed to update document: %w", err)
	}

	return s.DocumentRepository.GetByID(ctx, id)
}

// Delete removes the metadata and best-effort deletes the stored file.
func (s *Service) Delete(ctx context.Context, id string) error {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	d, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.canModify(cu, d) {
		return identity.ErrNotResourceOwner
	}

	if err := s.DocumentRepository.Delete(ctx, id); err != nil {
		return err
	}

	if d.FilePath != "" {
		// Metadata is already gone; a dangling file is acceptable.
		_ = s.storage.Delete(ctx, d.FilePath)
	}

	return nil
}

func (s *Service) canSee(cu identity.CurrentUser, d document.Document) bool {
	if cu.IsAdmin || d.IsPublic {
		return true
	}
	return cu.EmployeeID != nil && *cu.EmployeeID == d.EmployeeID
}

func (s *Service) canModify(cu identity.CurrentUser, d document.Document) bool {
	if cu.IsAdmin {
		return true
	}
	return cu.EmployeeID != nil && *cu.EmployeeID == d.EmployeeID
}
