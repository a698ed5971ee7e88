package announcement

import (
	"context"
	"errors"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type Announcement struct {
	ID          string
	Title       string
	Content     string
	CreatedByID string
	StartDate   time.Time
	EndDate     *time.Time
	IsActive    bool
	Priority    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// Resolved for responses
	CreatedByName *string
}

const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// AnnouncementRepository - interface for the announcements table
type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	List(ctx context.Context) ([]Announcement, error)
	// ListActive returns announcements whose window covers the given day.
	ListActive(ctx context.Context, on time.Time) ([]Announcement, error)
	Update(ctx context.Context, a Announcement) error
	Delete(ctx context.Context, id string) error
}

type CreateAnnouncementRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	Priority  string  `json:"priority,omitempty"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not exceed 200 characters"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "content is required"})
	}
	if len(r.Content) > 2000 {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "content must not exceed 2000 characters"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}
	if r.Priority != "" && !validator.IsInSlice(r.Priority, []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be one of Low, Normal, High, Urgent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAnnouncementRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	IsActive  bool    `json:"is_active"`
	Priority  string  `json:"priority,omitempty"`
}

func (r *UpdateAnnouncementRequest) Validate() error {
	c := CreateAnnouncementRequest{Title: r.Title, Content: r.Content, StartDate: r.StartDate, EndDate: r.EndDate, Priority: r.Priority}
	return c.Validate()
}

type AnnouncementResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	CreatedByID   string     `json:"created_by_id"`
	CreatedByName *string    `json:"created_by_name,omitempty"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	IsActive      bool       `json:"is_active"`
	Priority      string     `json:"priority"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		CreatedByID:   a.CreatedByID,
		CreatedByName: a.CreatedByName,
		StartDate:     a.StartDate,
		EndDate:       a.EndDate,
		IsActive:      a.IsActive,
		Priority:      a.Priority,
		CreatedAt:     a.CreatedAt,
	}
}
