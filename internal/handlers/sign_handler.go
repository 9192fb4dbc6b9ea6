package handlers

import (
	"net/http"

	"shopvid_backend/internal/logger"
	"shopvid_backend/internal/storage"
	"shopvid_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// SignHandler issues presigned upload credentials for client-orchestrated
// uploads: the browser asks for a credential here, PUTs the file straight
// to the bucket, then creates the Video record with the returned public
// URL. No object is written by this endpoint itself.
type SignHandler struct {
	*BaseHandler
	signer storage.Signer
}

func NewSignHandler(base *BaseHandler, signer storage.Signer) *SignHandler {
	return &SignHandler{
		BaseHandler: base,
		signer:      signer,
	}
}

func (h *SignHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/sign-s3", h.SignUpload)
}

// SignUpload handles GET /sign-s3?filename=&filetype=
func (h *SignHandler) SignUpload(c *gin.Context) {
	if _, ok := h.GetShopOrAbort(c); !ok {
		return
	}

	filename := c.Query("filename")
	filetype := c.Query("filetype")
	if filename == "" || filetype == "" {
		apperrors.HandleError(c, apperrors.ErrMissingSignParams)
		return
	}

	signed, err := h.signer.SignUpload(c.Request.Context(), filename, filetype)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to presign upload", err, "filename", filename)
		apperrors.HandleError(c, apperrors.ErrSignFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"signedUrl": signed.SignedURL,
		"publicUrl": signed.PublicURL,
	})
}
