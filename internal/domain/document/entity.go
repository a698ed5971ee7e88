package document

import "time"

// Document is the metadata record for an uploaded file. The bytes live in
// external storage; only the path/URL is kept here.
type Document struct {
	ID           string
	EmployeeID   string
	Name         string
	Title        string
	Description  string
	DocumentType string
	FilePath     string
	FileURL      string
	FileType     string
	FileSize     int64
	IsPublic     bool
	Tags         string
	Status       string
	ExpiryDate   *time.Time
	UploadDate   time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Resolved for responses
	EmployeeName *string
}

const (
	StatusActive   = "Active"
	StatusArchived = "Archived"
	StatusExpired  = "Expired"
)
