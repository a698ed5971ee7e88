package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/leave"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type_id, l.start_date, l.end_date, l.reason,
	l.status, l.approved_by_id, l.approval_date, l.comments, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	lt.name AS leave_type_name,
	a.first_name || ' ' || a.last_name AS approved_by_name
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveTypeID, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.ApprovedByID, &l.ApprovalDate, &l.Comments, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName,
		&l.LeaveTypeName,
		&l.ApprovedByName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, leave_type_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, leave_type_id, start_date, end_date, reason,
				  status, approved_by_id, approval_date, comments, created_at, updated_at
	`

	var created leave.Leave
	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.LeaveTypeID, l.StartDate, l.EndDate, l.Reason, l.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.LeaveTypeID,
		&created.StartDate, &created.EndDate, &created.Reason,
		&created.Status, &created.ApprovedByID, &created.ApprovalDate, &created.Comments,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, err
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		JOIN leave_types lt ON l.leave_type_id = lt.id
		LEFT JOIN employees a ON l.approved_by_id = a.id
		WHERE l.id = $1
	`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}

	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		JOIN leave_types lt ON l.leave_type_id = lt.id
		LEFT JOIN employees a ON l.approved_by_id = a.id
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		JOIN leave_types lt ON l.leave_type_id = lt.id
		LEFT JOIN employees a ON l.approved_by_id = a.id
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET start_date = $1, end_date = $2, reason = $3, status = $4,
			approved_by_id = $5, approval_date = $6, comments = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		l.StartDate, l.EndDate, l.Reason, l.Status,
		l.ApprovedByID, l.ApprovalDate, l.Comments, l.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}
