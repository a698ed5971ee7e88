package document

import "context"

// SearchFilter narrows a document search to what the caller may see.
type SearchFilter struct {
	Term string
	// PublicOnly restricts results to public documents.
	PublicOnly bool
	// EmployeeID additionally includes this employee's own documents.
	EmployeeID *string
}

// DocumentRepository - interface for the documents table
type DocumentRepository interface {
	Create(ctx context.Context, d Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	List(ctx context.Context) ([]Document, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Document, error)
	ListPublic(ctx context.Context) ([]Document, error)
	Search(ctx context.Context, filter SearchFilter) ([]Document, error)
	Update(ctx context.Context, d Document) error
	Delete(ctx context.Context, id string) error
}
