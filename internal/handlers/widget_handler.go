package handlers

import (
	"net/http"

	"shopvid_backend/internal/services"
	"shopvid_backend/internal/services/dto"
	"shopvid_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WidgetHandler struct {
	*BaseHandler
	widgetService services.WidgetService
}

func NewWidgetHandler(base *BaseHandler, widgetService services.WidgetService) *WidgetHandler {
	return &WidgetHandler{
		BaseHandler:   base,
		widgetService: widgetService,
	}
}

func (h *WidgetHandler) RegisterRoutes(r *gin.RouterGroup) {
	widget := r.Group("/widget-settings")
	{
		widget.GET("", h.GetSettings)
		widget.PUT("", h.UpdateSettings)
	}
}

// GetSettings returns the shop's widget configuration, creating the
// default row on first read.
func (h *WidgetHandler) GetSettings(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	settings, err := h.widgetService.GetOrCreateSettings(h.GetDB(c), shop)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *WidgetHandler) UpdateSettings(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateWidgetSettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	settings, err := h.widgetService.UpdateSettings(h.GetDB(c), shop, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "settings": settings})
}
