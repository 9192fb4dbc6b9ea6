package app

import (
	"database/sql"
	"fmt"
	"time"

	"shopvid_backend/internal/config"
	"shopvid_backend/internal/handlers"
	"shopvid_backend/internal/logger"
	"shopvid_backend/internal/middleware"
	"shopvid_backend/internal/repositories"
	"shopvid_backend/internal/routes"
	"shopvid_backend/internal/services"
	"shopvid_backend/internal/shopify"
	"shopvid_backend/internal/storage"
	"shopvid_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	// Storage signer gets its configuration explicitly; a missing bucket
	// or credential fails startup instead of surfacing per request. The
	// error names missing fields only, never values.
	signer, err := storage.NewSigner(storage.Config{
		Type:      cfg.Storage.Type,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		BaseURL:   cfg.Storage.BaseURL,
		SignTTL:   time.Duration(cfg.Storage.SignTTLSeconds) * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage signer", "error", err)
	}
	logger.Info("Storage signer initialized", "type", cfg.Storage.Type)

	gateway := shopify.NewGateway(cfg.Shopify.AdminToken, cfg.Shopify.APIVersion)

	serviceContainer := initializeServices(signer)
	appHandlers := initializeHandlers(cfg, serviceContainer, signer, gateway)

	ginRouter := initializeGinRouter(gormDB)

	sessionAuth := middleware.SessionAuthMiddleware(cfg.Shopify.APIKey, cfg.Shopify.APISecret)
	routes.RegisterRoutes(ginRouter, appHandlers, sessionAuth)

	return ginRouter
}

func initializeServices(signer storage.Signer) *services.ServiceContainer {
	videoRepo := repositories.NewVideoRepository()
	tagRepo := repositories.NewProductTagRepository()
	settingsRepo := repositories.NewWidgetSettingsRepository()

	videoService := services.NewVideoService(videoRepo, tagRepo, signer)
	widgetService := services.NewWidgetService(settingsRepo)

	return &services.ServiceContainer{
		VideoService:  videoService,
		WidgetService: widgetService,
	}
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer, signer storage.Signer, gateway *shopify.Gateway) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		VideoHandler:     handlers.NewVideoHandler(baseHandler, services.VideoService, gateway, signer, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
		WidgetHandler:    handlers.NewWidgetHandler(baseHandler, services.WidgetService),
		SignHandler:      handlers.NewSignHandler(baseHandler, signer),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, services.VideoService),
		PublicHandler:    handlers.NewPublicHandler(baseHandler, services.VideoService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
