package services

import (
	"shopvid_backend/internal/models"
	"shopvid_backend/internal/repositories"
	"shopvid_backend/internal/services/dto"
	"shopvid_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WidgetService interface {
	GetOrCreateSettings(db *gorm.DB, shop string) (*models.WidgetSettings, error)
	UpdateSettings(db *gorm.DB, shop string, req *dto.UpdateWidgetSettingsRequest) (*models.WidgetSettings, error)
}

type widgetService struct {
	settingsRepo repositories.WidgetSettingsRepository
}

func NewWidgetService(settingsRepo repositories.WidgetSettingsRepository) WidgetService {
	return &widgetService{
		settingsRepo: settingsRepo,
	}
}

// GetOrCreateSettings returns the shop's widget configuration, lazily
// creating the default row on first read.
func (s *widgetService) GetOrCreateSettings(db *gorm.DB, shop string) (*models.WidgetSettings, error) {
	settings, err := s.settingsRepo.FindByShop(db, shop)
	if err == nil {
		return settings, nil
	}
	if err != repositories.ErrWidgetSettingsNotFound {
		return nil, err
	}

	settings = &models.WidgetSettings{
		Shop:    shop,
		Layout:  models.WidgetLayoutBubble,
		Options: datatypes.JSON([]byte(`{}`)),
	}
	if err := s.settingsRepo.Create(db, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *widgetService) UpdateSettings(db *gorm.DB, shop string, req *dto.UpdateWidgetSettingsRequest) (*models.WidgetSettings, error) {
	layout := models.WidgetLayout(req.Layout)
	if !models.ValidWidgetLayout(layout) {
		return nil, apperrors.ErrInvalidLayout
	}

	settings, err := s.GetOrCreateSettings(db, shop)
	if err != nil {
		return nil, err
	}

	settings.Layout = layout
	if len(req.Options) > 0 {
		settings.Options = datatypes.JSON(req.Options)
	}

	if err := s.settingsRepo.Update(db, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
