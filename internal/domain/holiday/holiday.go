package holiday

import (
	"context"
	"errors"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

// Holiday is a calendar entry for display purposes. The attendance rate
// calculation deliberately ignores holidays and counts Mon-Fri only.
type Holiday struct {
	ID          string
	Name        string
	Description string
	Date        time.Time
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

var ErrHolidayNotFound = errors.New("holiday not found")

// HolidayRepository - interface for the holidays table
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, id string) error
}

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"is_recurring"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	IsRecurring bool      `json:"is_recurring"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Date:        h.Date,
		IsRecurring: h.IsRecurring,
	}
}
