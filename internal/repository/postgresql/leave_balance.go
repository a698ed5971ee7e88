package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/leave"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, leave_type_id, year, allotted_days, used_days)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING
		RETURNING id, employee_id, leave_type_id, year, allotted_days, used_days, created_at, updated_at
	`

	var created leave.LeaveBalance
	err := q.QueryRow(ctx, query,
		b.EmployeeID, b.LeaveTypeID, b.Year, b.AllottedDays, b.UsedDays,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.LeaveTypeID,
		&created.Year,
		&created.AllottedDays,
		&created.UsedDays,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		// A concurrent insert won the conflict; read the surviving row.
		if errors.Is(err, pgx.ErrNoRows) {
			return r.GetByEmployeeTypeYear(ctx, b.EmployeeID, b.LeaveTypeID, b.Year)
		}
		return leave.LeaveBalance{}, err
	}

	return created, nil
}

// GetByEmployeeTypeYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.year,
			   lb.allotted_days, lb.used_days, lb.created_at, lb.updated_at,
			   lt.name AS leave_type_name
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.employee_id = $1 AND lb.leave_type_id = $2 AND lb.year = $3
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&b.ID,
		&b.EmployeeID,
		&b.LeaveTypeID,
		&b.Year,
		&b.AllottedDays,
		&b.UsedDays,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.LeaveTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return b, nil
}

// ListByEmployeeYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.year,
			   lb.allotted_days, lb.used_days, lb.created_at, lb.updated_at,
			   lt.name AS leave_type_name
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.employee_id = $1 AND lb.year = $2
		ORDER BY lt.name
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID,
			&b.EmployeeID,
			&b.LeaveTypeID,
			&b.Year,
			&b.AllottedDays,
			&b.UsedDays,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.LeaveTypeName,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, nil
}

// ReserveDays implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ReserveDays(ctx context.Context, balanceID string, days int) error {
	q := GetQuerier(ctx, r.db)

	// The guard in the WHERE clause makes the reservation atomic: two
	// concurrent requests cannot both pass it for the same remaining days.
	query := `
		UPDATE leave_balances
		SET used_days = used_days + $1, updated_at = NOW()
		WHERE id = $2 AND used_days + $1 <= allotted_days
	`

	tag, err := q.Exec(ctx, query, days, balanceID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}

// RestoreDays implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) RestoreDays(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used_days = GREATEST(used_days - $1, 0), updated_at = NOW()
		WHERE employee_id = $2 AND leave_type_id = $3 AND year = $4
	`

	tag, err := q.Exec(ctx, query, days, employeeID, leaveTypeID, year)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}
