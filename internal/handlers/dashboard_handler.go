package handlers

import (
	"net/http"

	"shopvid_backend/internal/services"
	"shopvid_backend/internal/services/dto"
	"shopvid_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	videoService services.VideoService
}

func NewDashboardHandler(base *BaseHandler, videoService services.VideoService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:  base,
		videoService: videoService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetOverview)
}

// GetOverview returns the dashboard numbers. Views and engagement are
// hardcoded placeholders; only the video count is live.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	count, err := h.videoService.CountVideos(h.GetDB(c), shop)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		VideoCount:     count,
		TotalViews:     0,
		EngagementRate: 0,
	})
}
