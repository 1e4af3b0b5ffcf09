package routes

import (
	"gear-garage-backend/internal/api/handlers"
	"gear-garage-backend/internal/api/middleware"
	"gear-garage-backend/internal/asset"
	"gear-garage-backend/internal/auth"
	"gear-garage-backend/internal/config"
	"gear-garage-backend/internal/repository"
	"gear-garage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	buildRepo := repository.NewBuildRepository(db)
	catalogRepo := repository.NewCatalogItemRepository(db)

	// Asset transport. The store credentials live here and only here: asset
	// addresses handed to clients are catalog item ids, never store URLs.
	var transport asset.Transport
	if cfg.AssetTransport == "http" {
		transport = asset.NewHTTPTransport(cfg.AssetBaseURL, cfg.AssetToken)
	} else {
		minioTransport, err := asset.NewMinioTransport(cfg.AssetEndpoint, cfg.AssetAccessKey, cfg.AssetSecretKey, cfg.AssetBucket, cfg.AssetUseSSL)
		if err != nil {
			// Image fetches degrade to not-found rather than the whole
			// service refusing to start.
			logrus.WithError(err).Warn("Asset store unavailable, images disabled")
			transport = asset.Disabled()
		} else {
			transport = minioTransport
		}
	}
	assetCache := asset.NewCache(transport)

	// Services
	buildService := service.NewBuildService(buildRepo, catalogRepo, validator, cfg)
	catalogService := service.NewCatalogService(catalogRepo, validator)
	assetService := service.NewAssetService(catalogRepo, assetCache)

	// Auth for the admin catalog surface
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, assetCache)
	buildHandler := handlers.NewBuildHandler(buildService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	assetHandler := handlers.NewAssetHandler(assetService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		builds := v1.Group("/builds")
		{
			builds.POST("/temp", buildHandler.CreateBuild)
			builds.POST("/validate", buildHandler.ValidateBuild)
			builds.GET("/:token", buildHandler.GetBuild)
			builds.PATCH("/:token", buildHandler.UpdateBuild)
			builds.POST("/:token/promote", buildHandler.PromoteBuild)
		}

		catalog := v1.Group("/catalog-items")
		{
			catalog.GET("", catalogHandler.SearchCatalogItems)
			catalog.GET("/:id", catalogHandler.GetCatalogItem)
			catalog.POST("", authMiddleware.RequireAuth(), catalogHandler.CreateCatalogItem)
			catalog.PUT("/:id", authMiddleware.RequireAuth(), catalogHandler.UpdateCatalogItem)
		}

		v1.GET("/assets/:id", assetHandler.GetCatalogImage)
	}

	return router
}
