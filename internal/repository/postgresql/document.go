package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/document"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

const documentColumns = `
	d.id, d.employee_id, d.name, d.title, d.description, d.document_type,
	d.file_path, d.file_url, d.file_type, d.file_size, d.is_public, d.tags,
	d.status, d.expiry_date, d.upload_date, d.created_at, d.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Name, &d.Title, &d.Description, &d.DocumentType,
		&d.FilePath, &d.FileURL, &d.FileType, &d.FileSize, &d.IsPublic, &d.Tags,
		&d.Status, &d.ExpiryDate, &d.UploadDate, &d.CreatedAt, &d.UpdatedAt,
		&d.EmployeeName,
	)
	return d, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, d document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (employee_id, name, title, description, document_type,
							   file_path, file_url, file_type, file_size, is_public,
							   tags, status, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, employee_id, name, title, description, document_type,
				  file_path, file_url, file_type, file_size, is_public, tags,
				  status, expiry_date, upload_date, created_at, updated_at
	`

	var created document.Document
	err := q.QueryRow(ctx, query,
		d.EmployeeID, d.Name, d.Title, d.Description, d.DocumentType,
		d.FilePath, d.FileURL, d.FileType, d.FileSize, d.IsPublic,
		d.Tags, d.Status, d.ExpiryDate,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Name, &created.Title,
		&created.Description, &created.DocumentType,
		&created.FilePath, &created.FileURL, &created.FileType, &created.FileSize,
		&created.IsPublic, &created.Tags,
		&created.Status, &created.ExpiryDate, &created.UploadDate,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return document.Document{}, err
	}

	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN employees e ON d.employee_id = e.id
		WHERE d.id = $1
	`

	d, err := scanDocument(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, err
	}

	return d, nil
}

func (r *documentRepositoryImpl) queryDocuments(ctx context.Context, query string, args ...any) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]document.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}

	return documents, nil
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context) ([]document.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN employees e ON d.employee_id = e.id
		ORDER BY d.upload_date DESC
	`
	return r.queryDocuments(ctx, query)
}

// ListByEmployee implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]document.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN employees e ON d.employee_id = e.id
		WHERE d.employee_id = $1
		ORDER BY d.upload_date DESC
	`
	return r.queryDocuments(ctx, query, employeeID)
}

// ListPublic implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListPublic(ctx context.Context) ([]document.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN employees e ON d.employee_id = e.id
		WHERE d.is_public = TRUE
		ORDER BY d.upload_date DESC
	`
	return r.queryDocuments(ctx, query)
}

// Search implements document.DocumentRepository.
func (r *documentRepositoryImpl) Search(ctx context.Context, filter document.SearchFilter) ([]document.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN employees e ON d.employee_id = e.id
		WHERE (d.name ILIKE $1 OR d.title ILIKE $1 OR d.description ILIKE $1 OR d.tags ILIKE $1)
	`
	args := []any{"%" + filter.Term + "%"}

	if filter.PublicOnly {
		if filter.EmployeeID != nil {
			query += ` AND (d.is_public = TRUE OR d.employee_id = $2)`
			args = append(args, *filter.EmployeeID)
		} else {
			query += ` AND d.is_public = TRUE`
		}
	}
	query += ` ORDER BY d.upload_date DESC`

	return r.queryDocuments(ctx, query, args...)
}

// Update implements document.DocumentRepository.
func (r *documentRepositoryImpl) Update(ctx context.Context, d document.Document) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE documents
		SET name = $1, title = $2, description = $3, document_type = $4,
			is_public = $5, tags = $6, status = $7, expiry_date = $8, updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		d.Name, d.Title, d.Description, d.DocumentType,
		d.IsPublic, d.Tags, d.Status, d.ExpiryDate, d.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}
