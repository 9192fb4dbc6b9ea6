package routes

import (
	"shopvid_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the admin API and the public storefront API.
// Admin routes sit behind the session-token middleware; the public videos
// endpoint needs no session at all.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	sessionAuth gin.HandlerFunc,
) {
	// Admin API (authenticated shop session)
	api := ginRouter.Group("/api/v1")
	api.Use(sessionAuth)
	{
		appHandlers.SignHandler.RegisterRoutes(api)
		appHandlers.VideoHandler.RegisterRoutes(api)
		appHandlers.WidgetHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
	}

	// The sign endpoint also lives at its historical path
	legacy := ginRouter.Group("/api")
	legacy.Use(sessionAuth)
	{
		legacy.GET("/sign-s3", appHandlers.SignHandler.SignUpload)
	}

	// Public storefront API (no session; CORS is mounted engine-wide)
	public := ginRouter.Group("/api")
	{
		appHandlers.PublicHandler.RegisterRoutes(public)
	}
}
