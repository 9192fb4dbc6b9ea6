package repositories

import (
	"errors"

	"shopvid_backend/internal/models"
	"shopvid_backend/internal/types"

	"gorm.io/gorm"
)

var (
	ErrVideoNotFound = errors.New("video not found")
)

type VideoRepository interface {
	Create(db *gorm.DB, video *models.Video) error
	FindByShop(db *gorm.DB, shop string, filters *types.VideoFilters) ([]models.Video, error)
	FindByID(db *gorm.DB, shop, id string) (*models.Video, error)
	Update(db *gorm.DB, video *models.Video) error
	Delete(db *gorm.DB, shop, id string) error
	CountByShop(db *gorm.DB, shop string) (int64, error)
}

type VideoRepositoryImpl struct {
}

func NewVideoRepository() VideoRepository {
	return &VideoRepositoryImpl{}
}

func (r *VideoRepositoryImpl) Create(db *gorm.DB, video *models.Video) error {
	return db.Create(video).Error
}

// FindByShop lists a shop's videos, newest first. When a group filter is
// set, videos in the requested group, the "all" group, and legacy rows
// without a group all match.
func (r *VideoRepositoryImpl) FindByShop(db *gorm.DB, shop string, filters *types.VideoFilters) ([]models.Video, error) {
	var videos []models.Video

	query := db.Preload("Products").Where("shop = ?", shop)
	if filters != nil && filters.Group != nil {
		query = query.Where(`"group" = ? OR "group" = ? OR "group" IS NULL`, *filters.Group, models.GroupAll)
	}

	err := query.Order("created_at DESC").Find(&videos).Error
	return videos, err
}

func (r *VideoRepositoryImpl) FindByID(db *gorm.DB, shop, id string) (*models.Video, error) {
	var video models.Video
	err := db.Preload("Products").Where("shop = ?", shop).First(&video, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepositoryImpl) Update(db *gorm.DB, video *models.Video) error {
	return db.Save(video).Error
}

// Delete removes the video and, through the FK cascade, its product tags.
func (r *VideoRepositoryImpl) Delete(db *gorm.DB, shop, id string) error {
	result := db.Where("shop = ? AND id = ?", shop, id).Delete(&models.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *VideoRepositoryImpl) CountByShop(db *gorm.DB, shop string) (int64, error) {
	var count int64
	err := db.Model(&models.Video{}).Where("shop = ?", shop).Count(&count).Error
	return count, err
}
