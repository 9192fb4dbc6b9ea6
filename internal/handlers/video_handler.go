package handlers

import (
	"net/http"

	"shopvid_backend/internal/logger"
	"shopvid_backend/internal/repositories"
	"shopvid_backend/internal/services"
	"shopvid_backend/internal/services/dto"
	"shopvid_backend/internal/shopify"
	"shopvid_backend/internal/storage"
	"shopvid_backend/internal/types"
	"shopvid_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================
// VIDEO HANDLER
// ============================================

type VideoHandler struct {
	*BaseHandler
	videoService  services.VideoService
	gateway       *shopify.Gateway
	signer        storage.Signer
	maxUploadSize int64
	allowedTypes  []string
}

func NewVideoHandler(base *BaseHandler, videoService services.VideoService, gateway *shopify.Gateway, signer storage.Signer, maxUploadSize int64, allowedTypes []string) *VideoHandler {
	return &VideoHandler{
		BaseHandler:   base,
		videoService:  videoService,
		gateway:       gateway,
		signer:        signer,
		maxUploadSize: maxUploadSize,
		allowedTypes:  allowedTypes,
	}
}

// ============================================
// ROUTES
// ============================================

func (h *VideoHandler) RegisterRoutes(r *gin.RouterGroup) {
	videos := r.Group("/videos")
	{
		videos.GET("", h.ListVideos)
		videos.POST("", h.CreateVideo)
		videos.POST("/upload", h.UploadVideo)

		videos.GET("/:id", h.GetVideo)
		videos.PUT("/:id", h.UpdateVideo)
		videos.DELETE("/:id", h.DeleteVideo)

		videos.POST("/:id/tags", h.TagProducts)
		videos.DELETE("/:id/tags/:tagId", h.RemoveTag)
	}
}

// ============================================
// HANDLERS
// ============================================

// ListVideos returns the shop's videos, optionally filtered by page group.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	var query dto.ListVideosQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	filters := &types.VideoFilters{}
	if query.Group != "" {
		filters.Group = &query.Group
	}

	videos, err := h.videoService.ListVideos(h.GetDB(c), shop, filters)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VideoListResponse{Videos: videos})
}

func (h *VideoHandler) CreateVideo(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateVideoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	video, err := h.videoService.CreateVideo(c.Request.Context(), h.GetDB(c), shop, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

// UploadVideo accepts a multipart file plus metadata and runs the upload
// workflow server-side: credential, direct transfer, then the Video row.
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(h.maxUploadSize); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("no file provided"))
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file exceeds the allowed size"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !h.typeAllowed(contentType) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file type not allowed: "+contentType))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer src.Close()

	input := &services.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        src,
		Title:       c.PostForm("title"),
		Group:       c.PostForm("group"),
		Thumbnail:   c.PostForm("thumbnail"),
	}

	workflow := services.NewUploadWorkflow(h.signer, h.videoService)
	video, err := workflow.Run(c.Request.Context(), h.GetDB(c), shop, input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

// GetVideo returns the video with its tags enriched by one batched
// product metadata lookup. A lookup failure degrades to an empty map so
// the page still renders.
func (h *VideoHandler) GetVideo(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	video, err := h.videoService.GetVideo(h.GetDB(c), shop, c.Param("id"))
	if err != nil {
		h.handleVideoError(c, err)
		return
	}

	productIDs := make([]string, 0, len(video.Products))
	for _, tag := range video.Products {
		productIDs = append(productIDs, tag.ProductID)
	}

	productsMap := map[string]shopify.Product{}
	if len(productIDs) > 0 {
		client := h.gateway.ForShop(shop)
		productsMap, err = client.LookupProducts(c.Request.Context(), productIDs)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "product lookup failed, proceeding without metadata", "error", err.Error())
			productsMap = map[string]shopify.Product{}
		}
	}

	c.JSON(http.StatusOK, dto.VideoDetailResponse{
		Video:       video,
		ProductsMap: productsMap,
	})
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	video, err := h.videoService.UpdateVideo(h.GetDB(c), shop, c.Param("id"), &req)
	if err != nil {
		h.handleVideoError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	if err := h.videoService.DeleteVideo(c.Request.Context(), h.GetDB(c), shop, c.Param("id")); err != nil {
		h.handleVideoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *VideoHandler) TagProducts(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	var req dto.TagProductsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tags, err := h.videoService.TagProducts(h.GetDB(c), shop, c.Param("id"), req.Products)
	if err != nil {
		h.handleVideoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "tags": tags})
}

func (h *VideoHandler) RemoveTag(c *gin.Context) {
	shop, ok := h.GetShopOrAbort(c)
	if !ok {
		return
	}

	err := h.videoService.RemoveTag(h.GetDB(c), shop, c.Param("id"), c.Param("tagId"))
	if err != nil {
		h.handleVideoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// typeAllowed checks the declared content type against the configured
// allow-list. An empty list allows everything.
func (h *VideoHandler) typeAllowed(contentType string) bool {
	if len(h.allowedTypes) == 0 {
		return true
	}
	for _, allowed := range h.allowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// handleVideoError maps repository sentinels to API errors.
func (h *VideoHandler) handleVideoError(c *gin.Context, err error) {
	if apperrors.Is(err, repositories.ErrVideoNotFound) {
		apperrors.HandleError(c, apperrors.ErrNotFound(err))
		return
	}
	apperrors.HandleError(c, err)
}
