package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/holiday"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (name, description, date, is_recurring)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, date, is_recurring, created_at, updated_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, h.Name, h.Description, h.Date, h.IsRecurring).Scan(
		&created.ID, &created.Name, &created.Description, &created.Date,
		&created.IsRecurring, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}

	return created, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, date, is_recurring, created_at, updated_at
		FROM holidays
		WHERE id = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Description, &h.Date,
		&h.IsRecurring, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}

	return h, nil
}

// ListByYear implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	// Recurring holidays repeat every year regardless of the stored year.
	query := `
		SELECT id, name, description, date, is_recurring, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1 OR is_recurring = TRUE
		ORDER BY EXTRACT(MONTH FROM date), EXTRACT(DAY FROM date)
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Description, &h.Date,
			&h.IsRecurring, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $1, description = $2, date = $3, is_recurring = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, h.Name, h.Description, h.Date, h.IsRecurring, h.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}
