package repositories

import (
	"shopvid_backend/internal/models"

	"gorm.io/gorm"
)

type ProductTagRepository interface {
	Create(db *gorm.DB, tag *models.ProductTag) error
	Exists(db *gorm.DB, videoID, productID string) (bool, error)
	FindByVideo(db *gorm.DB, videoID string) ([]models.ProductTag, error)
	Delete(db *gorm.DB, videoID, tagID string) error
}

type ProductTagRepositoryImpl struct {
}

func NewProductTagRepository() ProductTagRepository {
	return &ProductTagRepositoryImpl{}
}

func (r *ProductTagRepositoryImpl) Create(db *gorm.DB, tag *models.ProductTag) error {
	return db.Create(tag).Error
}

// Exists reports whether the video already carries a tag for the product.
// Callers check-then-create; a concurrent duplicate slipping through is
// tolerated (no unique index, see the tagging service).
func (r *ProductTagRepositoryImpl) Exists(db *gorm.DB, videoID, productID string) (bool, error) {
	var count int64
	err := db.Model(&models.ProductTag{}).
		Where("video_id = ? AND product_id = ?", videoID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProductTagRepositoryImpl) FindByVideo(db *gorm.DB, videoID string) ([]models.ProductTag, error) {
	var tags []models.ProductTag
	err := db.Where("video_id = ?", videoID).Order("created_at ASC").Find(&tags).Error
	return tags, err
}

// Delete removes a tag scoped to its video. Deleting an absent tag is a
// successful no-op.
func (r *ProductTagRepositoryImpl) Delete(db *gorm.DB, videoID, tagID string) error {
	return db.Where("video_id = ? AND id = ?", videoID, tagID).Delete(&models.ProductTag{}).Error
}
