package repositories

import (
	"errors"

	"shopvid_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWidgetSettingsNotFound = errors.New("widget settings not found")
)

type WidgetSettingsRepository interface {
	FindByShop(db *gorm.DB, shop string) (*models.WidgetSettings, error)
	Create(db *gorm.DB, settings *models.WidgetSettings) error
	Update(db *gorm.DB, settings *models.WidgetSettings) error
}

type WidgetSettingsRepositoryImpl struct {
}

func NewWidgetSettingsRepository() WidgetSettingsRepository {
	return &WidgetSettingsRepositoryImpl{}
}

func (r *WidgetSettingsRepositoryImpl) FindByShop(db *gorm.DB, shop string) (*models.WidgetSettings, error) {
	var settings models.WidgetSettings
	err := db.Where("shop = ?", shop).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWidgetSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *WidgetSettingsRepositoryImpl) Create(db *gorm.DB, settings *models.WidgetSettings) error {
	return db.Create(settings).Error
}

func (r *WidgetSettingsRepositoryImpl) Update(db *gorm.DB, settings *models.WidgetSettings) error {
	return db.Save(settings).Error
}
