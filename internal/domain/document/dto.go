package document

import (
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type CreateDocumentRequest struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	DocumentType string  `json:"document_type"`
	FilePath     string  `json:"file_path,omitempty"`
	FileURL      string  `json:"file_url"`
	FileType     string  `json:"file_type,omitempty"`
	FileSize     int64   `json:"file_size,omitempty"`
	IsPublic     bool    `json:"is_public"`
	Tags         string  `json:"tags,omitempty"`
	ExpiryDate   *string `json:"expiry_date,omitempty"`
}

func (r *CreateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.DocumentType) {
		errs = append(errs, validator.ValidationError{Field: "document_type", Message: "document_type is required"})
	}
	if len(r.Tags) > 200 {
		errs = append(errs, validator.ValidationError{Field: "tags", Message: "tags must not exceed 200 characters"})
	}
	if r.ExpiryDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "expiry_date", Message: "expiry_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDocumentRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	IsPublic    bool    `json:"is_public"`
	Tags        string  `json:"tags,omitempty"`
	Status      string  `json:"status,omitempty"`
	ExpiryDate  *string `json:"expiry_date,omitempty"`
}

func (r *UpdateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{StatusActive, StatusArchived, StatusExpired}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Active, Archived, Expired"})
	}
	if r.ExpiryDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "expiry_date", Message: "expiry_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DocumentType string     `json:"document_type"`
	FileURL      string     `json:"file_url"`
	FileType     string     `json:"file_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
	IsPublic     bool       `json:"is_public"`
	Tags         string     `json:"tags,omitempty"`
	Status       string     `json:"status"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	UploadDate   time.Time  `json:"upload_date"`
}

func ToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		Name:         d.Name,
		Title:        d.Title,
		Description:  d.Description,
		DocumentType: d.DocumentType,
		FileURL:      d.FileURL,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		IsPublic:     d.IsPublic,
		Tags:         d.Tags,
		Status:       d.Status,
		ExpiryDate:   d.ExpiryDate,
		UploadDate:   d.UploadDate,
	}
}
