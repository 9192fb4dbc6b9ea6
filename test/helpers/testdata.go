package helpers

import (
	"fmt"
	"testing"
	"time"

	"shopvid_backend/internal/config"
	"shopvid_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// UniqueShop returns a shop domain no other test uses. Every row in the
// system is shop-scoped, so a unique shop gives a test its own clean slate
// even when tests run in parallel against a shared database.
func UniqueShop() string {
	return fmt.Sprintf("test-shop-%d.myshopify.com", time.Now().UnixNano())
}

// MintSessionToken signs an embedded-app session token for shop with the
// configured test app credentials.
func MintSessionToken(t *testing.T, shop string) string {
	cfg := config.GetConfig()

	claims := jwt.MapClaims{
		"dest": "https://" + shop,
		"aud":  cfg.Shopify.APIKey,
		"iss":  fmt.Sprintf("https://%s/admin", shop),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Shopify.APISecret))
	if err != nil {
		t.Fatalf("Failed to mint session token: %v", err)
	}
	return token
}

// CreateVideo inserts a video row directly.
func CreateVideo(t *testing.T, db *gorm.DB, shop, title, group, url string) models.Video {
	video := models.Video{
		Shop:  shop,
		Title: title,
		URL:   url,
	}
	if group != "" {
		video.Group = &group
	}
	if err := db.Create(&video).Error; err != nil {
		t.Fatalf("Failed to create test video: %v", err)
	}
	return video
}

// CreateLegacyVideo inserts a video with a NULL group, the shape rows
// created before grouping existed have.
func CreateLegacyVideo(t *testing.T, db *gorm.DB, shop, title, url string) models.Video {
	video := models.Video{
		Shop:  shop,
		Title: title,
		URL:   url,
	}
	if err := db.Create(&video).Error; err != nil {
		t.Fatalf("Failed to create legacy test video: %v", err)
	}
	if err := db.Model(&video).Update("group", nil).Error; err != nil {
		t.Fatalf("Failed to null out group: %v", err)
	}
	video.Group = nil
	return video
}

// CreateTag attaches a product tag to a video directly.
func CreateTag(t *testing.T, db *gorm.DB, videoID, productID, handle string) models.ProductTag {
	tag := models.ProductTag{
		VideoID:   videoID,
		ProductID: productID,
		Handle:    handle,
	}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("Failed to create test tag: %v", err)
	}
	return tag
}
