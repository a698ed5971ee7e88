package setting

import (
	"context"
	"errors"
	"fmt"

	"github.com/workforcehq/hrm-backend-go/internal/domain/setting"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type Service struct {
	db database.TxBeginner
	setting.SettingRepository
}

func NewService(db database.TxBeginner, settingRepository setting.SettingRepository) *Service {
	return &Service{
		db:                db,
		SettingRepository: settingRepository,
	}
}

// Create adds a setting. Keys are unique case-insensitively.
func (s *Service) Create(ctx context.Context, req setting.CreateSettingRequest) (setting.Setting, error) {
	if _, err := s.SettingRepository.GetByKey(ctx, req.Key); err == nil {
		return setting.Setting{}, setting.ErrKeyTaken
	} else if !errors.Is(err, setting.ErrSettingNotFound) {
		return setting.Setting{}, fmt.Errorf("failed to check setting key: %w", err)
	}

	created, err := s.SettingRepository.Create(ctx, setting.Setting{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		IsReadOnly:  req.IsReadOnly,
	})
	if err != nil {
		return setting.Setting{}, fmt.Errorf("failed to create setting: %w", err)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (setting.Setting, error) {
	return s.SettingRepository.GetByID(ctx, id)
}

func (s *Service) GetByKey(ctx context.Context, key string) (setting.Setting, error) {
	return s.SettingRepository.GetByKey(ctx, key)
}

func (s *Service) List(ctx context.Context) ([]setting.Setting, error) {
	return s.SettingRepository.List(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]setting.Setting, error) {
	return s.SettingRepository.ListByCategory(ctx, category)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.SettingRepository.ListCategories(ctx)
}

// Update changes a setting's value. Read-only settings reject updates, and
// the new value must match the declared type.
func (s *Service) Update(ctx context.Context, id string, req setting.UpdateSettingRequest) (setting.Setting, error) {
	existing, err := s.SettingRepository.GetByID(ctx, id)
	if err != nil {
		return setting.Setting{}, err
	}
	if existing.IsReadOnly {
		return setting.Setting{}, setting.ErrReadOnly
	}
	if !setting.ValidateValue(existing.Type, req.Value) {
		return setting.Setting{}, setting.ErrInvalidValue
	}

	existing.Value = req.Value
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Category != "" {
		existing.Category = req.Category
	}

	if err := s.SettingRepository.Update(ctx, existing); err != nil {
		return setting.Setting{}, fmt.Errorf("failed to update setting: %w", err)
	}

	return s.SettingRepository.GetByID(ctx, id)
}

// Delete removes a setting unless it is read-only.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.SettingRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsReadOnly {
		return setting.ErrReadOnly
	}

	return s.SettingRepository.Delete(ctx, id)
}
