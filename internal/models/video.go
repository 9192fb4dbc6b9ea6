package models

// GroupAll is the universal-match group sentinel: a video in this group is
// visible on every page. A NULL group (legacy rows) behaves the same way.
const GroupAll = "all"

// Video is a shoppable video owned by a single shop.
type Video struct {
	BaseModel
	Shop      string  `gorm:"not null;index" json:"shop"`
	Title     string  `json:"title"`
	Group     *string `gorm:"default:'all'" json:"group"` // page-targeting label; nil = legacy, matches everywhere
	URL       string  `gorm:"not null" json:"url"`
	Thumbnail string  `json:"thumbnail"`
	Optimized bool    `gorm:"default:false" json:"optimized"` // ABS display toggle, no pipeline behind it

	// Relations
	Products []ProductTag `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"products"`
}

// ProductTag links a commerce product to a video. Exclusively owned by its
// video; deleting the video cascades. At most one tag per (video, product)
// pair, enforced check-then-create.
type ProductTag struct {
	BaseModel
	VideoID   string `gorm:"not null;index" json:"videoId"`
	ProductID string `gorm:"not null" json:"productId"`
	Handle    string `json:"handle"` // denormalized for display links
	VariantID string `json:"variantId"`
}
