package dto

import (
	"encoding/json"
)

type UpdateWidgetSettingsRequest struct {
	Layout  string          `json:"layout" validate:"required,oneof=BUBBLE CAROUSEL GRID"`
	Options json.RawMessage `json:"options,omitempty"`
}
