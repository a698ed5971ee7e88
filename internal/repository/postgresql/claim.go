package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/claim"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type claimTypeRepositoryImpl struct {
	db *database.DB
}

// Create implements claim.ClaimTypeRepository.
func (r *claimTypeRepositoryImpl) Create(ctx context.Context, ct claim.ClaimType) (claim.ClaimType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO claim_types (name, description, maximum_amount, requires_receipt, requires_approval)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, maximum_amount, requires_receipt, requires_approval
	`

	var created claim.ClaimType
	err := q.QueryRow(ctx, query,
		ct.Name, ct.Description, ct.MaximumAmount, ct.RequiresReceipt, ct.RequiresApproval,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.MaximumAmount,
		&created.RequiresReceipt,
		&created.RequiresApproval,
	)
	if err != nil {
		return claim.ClaimType{}, err
	}

	return created, nil
}

// GetByID implements claim.ClaimTypeRepository.
func (r *claimTypeRepositoryImpl) GetByID(ctx context.Context, id string) (claim.ClaimType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, maximum_amount, requires_receipt, requires_approval
		FROM claim_types
		WHERE id = $1
	`

	var ct claim.ClaimType
	err := q.QueryRow(ctx, query, id).Scan(
		&ct.ID,
		&ct.Name,
		&ct.Description,
		&ct.MaximumAmount,
		&ct.RequiresReceipt,
		&ct.RequiresApproval,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return claim.ClaimType{}, claim.ErrClaimTypeNotFound
		}
		return claim.ClaimType{}, err
	}

	return ct, nil
}

// List implements claim.ClaimTypeRepository.
func (r *claimTypeRepositoryImpl) List(ctx context.Context) ([]claim.ClaimType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, maximum_amount, requires_receipt, requires_approval
		FROM claim_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]claim.ClaimType, 0)
	for rows.Next() {
		var ct claim.ClaimType
		if err := rows.Scan(
			&ct.ID,
			&ct.Name,
			&ct.Description,
			&ct.MaximumAmount,
			&ct.RequiresReceipt,
			&ct.RequiresApproval,
		); err != nil {
			return nil, err
		}
		types = append(types, ct)
	}

	return types, nil
}

// Update implements claim.ClaimTypeRepository.
func (r *claimTypeRepositoryImpl) Update(ctx context.Context, ct claim.ClaimType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE claim_types
		SET name = $1, description = $2, maximum_amount = $3,
			requires_receipt = $4, requires_approval = $5
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		ct.Name, ct.Description, ct.MaximumAmount, ct.RequiresReceipt, ct.RequiresApproval, ct.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return claim.ErrClaimTypeNotFound
	}

	return nil
}

// Delete implements claim.ClaimTypeRepository.
func (r *claimTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM claim_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return claim.ErrClaimTypeNotFound
	}

	return nil
}

func NewClaimTypeRepository(db *database.DB) claim.ClaimTypeRepository {
	return &claimTypeRepositoryImpl{db: db}
}

type claimRepositoryImpl struct {
	db *database.DB
}

const claimColumns = `
	c.id, c.employee_id, c.claim_type_id, c.title, c.description, c.amount,
	c.claim_date, c.status, c.approved_by_id, c.approval_date, c.comments,
	c.receipt_url, c.created_at, c.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	ct.name AS claim_type_name,
	a.first_name || ' ' || a.last_name AS approved_by_name
`

func scanClaim(row pgx.Row) (claim.Claim, error) {
	var c claim.Claim
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.ClaimTypeID, &c.Title, &c.Description, &c.Amount,
		&c.ClaimDate, &c.Status, &c.ApprovedByID, &c.ApprovalDate, &c.Comments,
		&c.ReceiptURL, &c.CreatedAt, &c.UpdatedAt,
		&c.EmployeeName,
		&c.ClaimTypeName,
		&c.ApprovedByName,
	)
	return c, err
}

// Create implements claim.ClaimRepository.
func (r *claimRepositoryImpl) Create(ctx context.Context, c claim.Claim) (claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO claims (employee_id, claim_type_id, title, description, amount,
							claim_date, status, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, claim_type_id, title, description, amount,
				  claim_date, status, approved_by_id, approval_date, comments,
				  receipt_url, created_at, updated_at
	`

	var created claim.Claim
	err := q.QueryRow(ctx, query,
		c.EmployeeID, c.ClaimTypeID, c.Title, c.Description, c.Amount,
		c.ClaimDate, c.Status, c.ReceiptURL,
	).Scan(
		&created.ID, &created.EmployeeID, &created.ClaimTypeID,
		&created.Title, &created.Description, &created.Amount,
		&created.ClaimDate, &created.Status, &created.ApprovedByID, &created.ApprovalDate,
		&created.Comments, &created.ReceiptURL, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return claim.Claim{}, err
	}

	return created, nil
}

// GetByID implements claim.ClaimRepository.
func (r *claimRepositoryImpl) GetByID(ctx context.Context, id string) (claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + claimColumns + `
		FROM claims c
		JOIN employees e ON c.employee_id = e.id
		JOIN claim_types ct ON c.claim_type_id = ct.id
		LEFT JOIN employees a ON c.approved_by_id = a.id
		WHERE c.id = $1
	`

	c, err := scanClaim(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return claim.Claim{}, claim.ErrClaimNotFound
		}
		return claim.Claim{}, err
	}

	return c, nil
}

func (r *claimRepositoryImpl) queryClaims(ctx context.Context, query string, args ...any) ([]claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := make([]claim.Claim, 0)
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	return claims, nil
}

// List implements claim.ClaimRepository.
func (r *claimRepositoryImpl) List(ctx context.Context) ([]claim.Claim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM claims c
		JOIN employees e ON c.employee_id = e.id
		JOIN claim_types ct ON c.claim_type_id = ct.id
		LEFT JOIN employees a ON c.approved_by_id = a.id
		ORDER BY c.created_at DESC
	`
	return r.queryClaims(ctx, query)
}

// ListByEmployee implements claim.ClaimRepository.
func (r *claimRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]claim.Claim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM claims c
		JOIN employees e ON c.employee_id = e.id
		JOIN claim_types ct ON c.claim_type_id = ct.id
		LEFT JOIN employees a ON c.approved_by_id = a.id
		WHERE c.employee_id = $1
		ORDER BY c.created_at DESC
	`
	return r.queryClaims(ctx, query, employeeID)
}

// ListByEmployeeYear implements claim.ClaimRepository.
func (r *claimRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]claim.Claim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM claims c
		JOIN employees e ON c.employee_id = e.id
		JOIN claim_types ct ON c.claim_type_id = ct.id
		LEFT JOIN employees a ON c.approved_by_id = a.id
		WHERE c.employee_id = $1 AND EXTRACT(YEAR FROM c.claim_date) = $2
		ORDER BY c.claim_date DESC
	`
	return r.queryClaims(ctx, query, employeeID, year)
}

// Update implements claim.ClaimRepository.
func (r *claimRepositoryImpl) Update(ctx context.Context, c claim.Claim) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE claims
		SET title = $1, description = $2, amount = $3, claim_date = $4, status = $5,
			approved_by_id = $6, approval_date = $7, comments = $8, receipt_url = $9,
			updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		c.Title, c.Description, c.Amount, c.ClaimDate, c.Status,
		c.ApprovedByID, c.ApprovalDate, c.Comments, c.ReceiptURL, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return claim.ErrClaimNotFound
	}

	return nil
}

// Delete implements claim.ClaimRepository.
func (r *claimRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return claim.ErrClaimNotFound
	}

	return nil
}

func NewClaimRepository(db *database.DB) claim.ClaimRepository {
	return &claimRepositoryImpl{db: db}
}
