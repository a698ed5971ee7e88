package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/domain/announcement"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type Service struct {
	db  database.TxBeginner
	now func() time.Time
	announcement.AnnouncementRepository
}

func NewService(db database.TxBeginner, announcementRepository announcement.AnnouncementRepository) *Service {
	return &Service{
		db:                     db,
		now:                    time.Now,
		AnnouncementRepository: announcementRepository,
	}
}

func (s *Service) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return announcement.Announcement{}, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return announcement.Announcement{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	a := announcement.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		CreatedByID: employeeID,
		StartDate:   startDate,
		IsActive:    true,
		Priority:    req.Priority,
	}
	if a.Priority == "" {
		a.Priority = announcement.PriorityNormal
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return announcement.Announcement{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		a.EndDate = &endDate
	}

	created, err := s.AnnouncementRepository.Create(ctx, a)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return s.AnnouncementRepository.GetByID(ctx, created.ID)
}

func (s *Service) Get(ctx context.Context, id string) (announcement.Announcement, error) {
	return s.AnnouncementRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]announcement.Announcement, error) {
	return s.AnnouncementRepository.List(ctx)
}

// ListActive returns announcements whose window covers today.
func (s *Service) ListActive(ctx context.Context) ([]announcement.Announcement, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.AnnouncementRepository.ListActive(ctx, today)
}

func (s *Service) Update(ctx context.Context, id string, req announcement.UpdateAnnouncementRequest) (announcement.Announcement, error) {
	existing, err := s.AnnouncementRepository.GetByID(ctx, id)
	if err != nil {
		return announcement.Announcement{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.StartDate = startDate
	existing.IsActive = req.IsActive
	if req.Priority != "" {
		existing.Priority = req.Priority
	}
	existing.EndDate = nil
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return announcement.Announcement{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		existing.EndDate = &endDate
	}

	if err := s.AnnouncementRepository.Update(ctx, existing); err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to update announcement: %w", err)
	}

	return s.AnnouncementRepository.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.AnnouncementRepository.Delete(ctx, id)
}
