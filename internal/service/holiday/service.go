package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/domain/holiday"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type Service struct {
	db database.TxBeginner
	holiday.HolidayRepository
}

func NewService(db database.TxBeginner, holidayRepository holiday.HolidayRepository) *Service {
	return &Service{
		db:                db,
		HolidayRepository: holidayRepository,
	}
}

func (s *Service) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (holiday.Holiday, error) {
	return s.HolidayRepository.GetByID(ctx, id)
}

func (s *Service) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return s.HolidayRepository.ListByYear(ctx, year)
}

func (s *Service) Update(ctx context.Context, id string, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	existing, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.Holiday{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Date = date
	existing.IsRecurring = req.IsRecurring

	if err := s.HolidayRepository.Update(ctx, existing); err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}
