package handlers

import (
	"net/http"

	"shopvid_backend/internal/services"
	"shopvid_backend/internal/services/dto"
	"shopvid_backend/internal/types"
	"shopvid_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the storefront widget. No session: the widget runs
// on the shop's own domain and identifies the tenant by query parameter.
// Read-only, CORS-enabled.
type PublicHandler struct {
	*BaseHandler
	videoService services.VideoService
}

func NewPublicHandler(base *BaseHandler, videoService services.VideoService) *PublicHandler {
	return &PublicHandler{
		BaseHandler:  base,
		videoService: videoService,
	}
}

func (h *PublicHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/videos", h.ListVideos)
}

// ListVideos handles GET /api/videos?shop=&group=
func (h *PublicHandler) ListVideos(c *gin.Context) {
	shop := c.Query("shop")
	if shop == "" {
		apperrors.HandleError(c, apperrors.ErrMissingShopParam)
		return
	}

	filters := &types.VideoFilters{}
	if group := c.Query("group"); group != "" {
		filters.Group = &group
	}

	videos, err := h.videoService.ListVideos(h.GetDB(c), shop, filters)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VideoListResponse{Videos: videos})
}
