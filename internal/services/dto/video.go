package dto

import (
	"shopvid_backend/internal/models"
	"shopvid_backend/internal/shopify"
)

type CreateVideoRequest struct {
	Title     string `json:"title" validate:"max=255"`
	Group     string `json:"group" validate:"max=100"`
	URL       string `json:"url" validate:"required,media_url"`
	Thumbnail string `json:"thumbnail" validate:"omitempty,url"`
}

type UpdateVideoRequest struct {
	Title     string `json:"title" validate:"max=255"`
	Group     string `json:"group" validate:"max=100"`
	Optimized *bool  `json:"optimized"` // display toggle; absent = unchanged
}

type ListVideosQuery struct {
	Group string `form:"group" json:"group" validate:"max=100"`
}

type TagProductInput struct {
	ProductID string `json:"productId" validate:"required"`
	Handle    string `json:"handle" validate:"max=255"`
	VariantID string `json:"variantId" validate:"max=255"`
}

type TagProductsRequest struct {
	Products []TagProductInput `json:"products" validate:"required,min=1,dive"`
}

// VideoDetailResponse mirrors the admin detail page payload: the stored
// video plus a live metadata map keyed by product id. Tags whose product
// is missing from the map render as "unavailable" on the client.
type VideoDetailResponse struct {
	Video       *models.Video              `json:"video"`
	ProductsMap map[string]shopify.Product `json:"productsMap"`
}

type VideoListResponse struct {
	Videos []models.Video `json:"videos"`
}

// DashboardResponse carries the overview numbers. Views and engagement
// are placeholders until an analytics pipeline exists.
type DashboardResponse struct {
	VideoCount     int64   `json:"videoCount"`
	TotalViews     int64   `json:"totalViews"`
	EngagementRate float64 `json:"engagementRate"`
}
