package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/setting"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type settingRepositoryImpl struct {
	db *database.DB
}

const settingColumns = `id, key, value, description, type, category, is_read_only, created_at, updated_at`

func scanSetting(row pgx.Row) (setting.Setting, error) {
	var s setting.Setting
	err := row.Scan(
		&s.ID, &s.Key, &s.Value, &s.Description, &s.Type, &s.Category,
		&s.IsReadOnly, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements setting.SettingRepository.
func (r *settingRepositoryImpl) Create(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (key, value, description, type, category, is_read_only)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + settingColumns

	created, err := scanSetting(q.QueryRow(ctx, query,
		s.Key, s.Value, s.Description, s.Type, s.Category, s.IsReadOnly,
	))
	if err != nil {
		return setting.Setting{}, err
	}

	return created, nil
}

// GetByID implements setting.SettingRepository.
func (r *settingRepositoryImpl) GetByID(ctx context.Context, id string) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSetting(q.QueryRow(ctx,
		`SELECT `+settingColumns+` FROM settings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, err
	}

	return s, nil
}

// GetByKey implements setting.SettingRepository.
func (r *settingRepositoryImpl) GetByKey(ctx context.Context, key string) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSetting(q.QueryRow(ctx,
		`SELECT `+settingColumns+` FROM settings WHERE LOWER(key) = LOWER($1)`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, err
	}

	return s, nil
}

func (r *settingRepositoryImpl) querySettings(ctx context.Context, query string, args ...any) ([]setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]setting.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}

	return settings, nil
}

// List implements setting.SettingRepository.
func (r *settingRepositoryImpl) List(ctx context.Context) ([]setting.Setting, error) {
	return r.querySettings(ctx,
		`SELECT `+settingColumns+` FROM settings ORDER BY category, key`)
}

// ListByCategory implements setting.SettingRepository.
func (r *settingRepositoryImpl) ListByCategory(ctx context.Context, category string) ([]setting.Setting, error) {
	return r.querySettings(ctx,
		`SELECT `+settingColumns+` FROM settings WHERE LOWER(category) = LOWER($1) ORDER BY key`,
		category)
}

// ListCategories implements setting.SettingRepository.
func (r *settingRepositoryImpl) ListCategories(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT category FROM settings ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// Update implements setting.SettingRepository.
func (r *settingRepositoryImpl) Update(ctx context.Context, s setting.Setting) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE settings
		SET value = $1, description = $2, type = $3, category = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, s.Value, s.Description, s.Type, s.Category, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return setting.ErrSettingNotFound
	}

	return nil
}

// Delete implements setting.SettingRepository.
func (r *settingRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM settings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return setting.ErrSettingNotFound
	}

	return nil
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}
