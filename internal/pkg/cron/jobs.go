package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/domain/document"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/workdays"
)

// MaintenanceJobs bundles the recurring database sweeps.
type MaintenanceJobs struct {
	db *database.DB
}

func NewMaintenanceJobs(db *database.DB) *MaintenanceJobs {
	return &MaintenanceJobs{db: db}
}

// MarkAbsentees inserts an Absent attendance row for every employee who has
// no record for the previous working day. Weekends are skipped; holiday
// calendars are handled by HR corrections, not here.
func (j *MaintenanceJobs) MarkAbsentees(ctx context.Context) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	if workdays.IsWeekend(yesterday) {
		return nil
	}

	tag, err := j.db.Pool.Exec(ctx, `
		INSERT INTO attendances (employee_id, date, is_present, status)
		SELECT e.id, $1, FALSE, 'Absent'
		FROM employees e
		WHERE NOT EXISTS (
			SELECT 1 FROM attendances a WHERE a.employee_id = e.id AND a.date = $1
		)
		AND NOT EXISTS (
			SELECT 1 FROM leaves l
			WHERE l.employee_id = e.id
			  AND l.status = 'Approved'
			  AND $1 BETWEEN l.start_date AND l.end_date
		)
		ON CONFLICT (employee_id, date) DO NOTHING`,
		yesterday)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		slog.Info("Marked absentees", "date", yesterday.Format("2006-01-02"), "count", tag.RowsAffected())
	}
	return nil
}

// ExpireDocuments flips Active documents whose expiry date has passed.
func (j *MaintenanceJobs) ExpireDocuments(ctx context.Context) error {
	tag, err := j.db.Pool.Exec(ctx, `
		UPDATE documents
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND expiry_date IS NOT NULL AND expiry_date < CURRENT_DATE`,
		document.StatusExpired, document.StatusActive)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		slog.Info("Expired documents", "count", tag.RowsAffected())
	}
	return nil
}
