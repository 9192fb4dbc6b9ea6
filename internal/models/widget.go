package models

import (
	"gorm.io/datatypes"
)

type WidgetLayout string

const (
	WidgetLayoutBubble   WidgetLayout = "BUBBLE"
	WidgetLayoutCarousel WidgetLayout = "CAROUSEL"
	WidgetLayoutGrid     WidgetLayout = "GRID"
)

// ValidWidgetLayout reports whether the value is in the closed enumeration.
func ValidWidgetLayout(layout WidgetLayout) bool {
	switch layout {
	case WidgetLayoutBubble, WidgetLayoutCarousel, WidgetLayoutGrid:
		return true
	}
	return false
}

// WidgetSettings is the single storefront widget configuration row of a
// shop. Lazily created with defaults on first read.
type WidgetSettings struct {
	BaseModel
	Shop    string         `gorm:"not null;uniqueIndex" json:"shop"`
	Layout  WidgetLayout   `gorm:"not null;default:'BUBBLE'" json:"layout"`
	Options datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"options"` // free-form appearance options
}
