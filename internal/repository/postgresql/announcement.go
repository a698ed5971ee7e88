package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/announcement"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

const announcementColumns = `
	an.id, an.title, an.content, an.created_by_id, an.start_date, an.end_date,
	an.is_active, an.priority, an.created_at, an.updated_at,
	e.first_name || ' ' || e.last_name AS created_by_name
`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.CreatedByID, &a.StartDate, &a.EndDate,
		&a.IsActive, &a.Priority, &a.CreatedAt, &a.UpdatedAt,
		&a.CreatedByName,
	)
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, content, created_by_id, start_date, end_date, is_active, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, content, created_by_id, start_date, end_date,
				  is_active, priority, created_at, updated_at
	`

	var created announcement.Announcement
	err := q.QueryRow(ctx, query,
		a.Title, a.Content, a.CreatedByID, a.StartDate, a.EndDate, a.IsActive, a.Priority,
	).Scan(
		&created.ID, &created.Title, &created.Content, &created.CreatedByID,
		&created.StartDate, &created.EndDate,
		&created.IsActive, &created.Priority, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return announcement.Announcement{}, err
	}

	return created, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + announcementColumns + `
		FROM announcements an
		JOIN employees e ON an.created_by_id = e.id
		WHERE an.id = $1
	`

	a, err := scanAnnouncement(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, err
	}

	return a, nil
}

func (r *announcementRepositoryImpl) queryAnnouncements(ctx context.Context, query string, args ...any) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := make([]announcement.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, nil
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements an
		JOIN employees e ON an.created_by_id = e.id
		ORDER BY an.start_date DESC
	`
	return r.queryAnnouncements(ctx, query)
}

// ListActive implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) ListActive(ctx context.Context, on time.Time) ([]announcement.Announcement, error) {
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements an
		JOIN employees e ON an.created_by_id = e.id
		WHERE an.is_active = TRUE
		  AND an.start_date <= $1
		  AND (an.end_date IS NULL OR an.end_date >= $1)
		ORDER BY an.priority DESC, an.start_date DESC
	`
	return r.queryAnnouncements(ctx, query, on)
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET title = $1, content = $2, start_date = $3, end_date = $4,
			is_active = $5, priority = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		a.Title, a.Content, a.StartDate, a.EndDate, a.IsActive, a.Priority, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}
