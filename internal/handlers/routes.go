package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"business-catalog-api/internal/middleware"
	"business-catalog-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	CatalogService services.CatalogService
	// AuthService is nil when authentication is disabled
	AuthService *middleware.AuthService
	Logger      *logrus.Logger
	Version     string
	// HealthCheck reports the snapshot store state; nil means no store
	HealthCheck func(ctx context.Context) error
}

// MiddlewareConfig holds the global middleware settings
type MiddlewareConfig struct {
	Logger      *logrus.Logger
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	catalogHandler := NewCatalogHandler(config.CatalogService)
	snapshotHandler := NewSnapshotHandler(config.CatalogService)
	authHandler := NewAuthHandler(config.AuthService)

	// Swagger UI over the business catalog registered with swag
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":   "healthy",
			"service":  "business-catalog-api",
			"version":  config.Version,
			"checksum": config.CatalogService.Checksum(),
			"time":     time.Now().UTC().Format(time.RFC3339),
		}
		if config.HealthCheck != nil {
			if err := config.HealthCheck(c.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["snapshot_store"] = err.Error()
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["snapshot_store"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	})

	v1 := router.Group("/api/v1")
	{
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/openapi.json", catalogHandler.GetJSON)
			catalog.GET("/openapi.yaml", catalogHandler.GetYAML)
			catalog.GET("/domains/:domain", catalogHandler.GetDomain)
			catalog.GET("/routes", catalogHandler.ListRoutes)
			catalog.GET("/verbs", catalogHandler.GetVerbs)
			catalog.GET("/query", catalogHandler.Query)
			catalog.GET("/lint", catalogHandler.GetLint)
			catalog.POST("/check/:domain/:resource", catalogHandler.CheckPayload)
		}

		snapshots := v1.Group("/snapshots")
		{
			snapshots.GET("", snapshotHandler.ListSnapshots)
			snapshots.GET("/diff", snapshotHandler.Diff)
			snapshots.GET("/:version", snapshotHandler.GetSnapshot)
			snapshots.GET("/:version/openapi.json", snapshotHandler.GetSnapshotDocument)
			snapshots.GET("/:version/lint", snapshotHandler.GetSnapshotLint)

			// Writes require a publisher token when authentication is enabled
			protected := snapshots.Group("")
			protected.Use(
				middleware.Authentication(config.AuthService),
				middleware.RequireRole(config.AuthService, middleware.RolePublisher),
			)
			{
				protected.POST("", snapshotHandler.Publish)
				protected.DELETE("/:version", snapshotHandler.DeleteSnapshot)
			}
		}

		auth := v1.Group("/auth")
		auth.Use(middleware.Authentication(config.AuthService))
		{
			auth.GET("/me", authHandler.Me)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *MiddlewareConfig) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(config.Logger))
	router.Use(middleware.CORS(config.CORSOrigins...))
	router.Use(middleware.SecurityHeaders())

	// Request size limit (1MB)
	router.Use(middleware.RequestSizeLimit(1 << 20))
	router.Use(middleware.ContentTypeValidation("application/json"))
	router.Use(middleware.RequestValidation())
	router.Use(middleware.RateLimiter(config.RateRPS, config.RateBurst))

	router.Use(middleware.StructuredLogger(config.Logger))
	router.Use(middleware.PerformanceMonitor(config.Logger, time.Second))
	router.Use(middleware.AuditLogger(config.Logger))
	router.Use(middleware.ErrorTracker(config.Logger))
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine, config *RouterConfig) {
	authHandler := NewAuthHandler(config.AuthService)

	dev := router.Group("/dev")
	{
		dev.POST("/token", authHandler.IssueToken)

		dev.GET("/config", func(c *gin.Context) {
			doc := config.CatalogService.Document()
			c.JSON(http.StatusOK, gin.H{
				"api_version":  config.Version,
				"catalog":      doc.Info,
				"domains":      doc.Domains(),
				"auth_enabled": config.AuthService != nil,
				"swagger_url":  "/swagger/index.html",
			})
		})
	}
}
