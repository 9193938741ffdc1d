package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"business-catalog-api/internal/adapters/storage"
	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/config"
	"business-catalog-api/internal/database"
	"business-catalog-api/internal/docs"
	"business-catalog-api/internal/handlers"
	"business-catalog-api/internal/middleware"
	"business-catalog-api/internal/repositories"
	"business-catalog-api/internal/repositories/sqlite"
	"business-catalog-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *logrus.Logger
	CatalogService services.CatalogService
	AuthService    *middleware.AuthService
	Store          storage.ArtifactStore

	// Internal dependencies
	db    *database.ConnectionManager
	repos repositories.RepositoryManager
}

// NewContainer opens the snapshot store and builds the catalog services
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	return newContainer(cfg, logger, true)
}

// NewReadOnlyContainer builds the catalog without a snapshot store.
// Snapshot operations report that history is disabled.
func NewReadOnlyContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	return newContainer(cfg, logger, false)
}

func newContainer(cfg *config.Config, logger *logrus.Logger, withSnapshots bool) (*Container, error) {
	if logger == nil {
		logger = logrus.New()
	}
	c := &Container{Config: cfg, Logger: logger}

	if withSnapshots {
		c.db = database.NewConnectionManager(&database.ConnectionConfig{
			DatabasePath:    cfg.Database.Path,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			AutoMigrate:     cfg.Database.AutoMigrate,
			Logger:          logger,
		})
		if err := c.db.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect to snapshot store: %w", err)
		}
		c.repos = sqlite.NewSQLiteRepositoryManager(c.db.GetDB(), logger)
	}

	serviceContainer, err := services.NewServiceContainer(c.repos, &services.ServiceConfig{
		Catalog: &services.CatalogConfig{Docs: DocsOptions(cfg)},
	}, logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	c.CatalogService = serviceContainer.CatalogService

	if err := docs.Register(c.CatalogService.Document()); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to register swagger document: %w", err)
	}

	if cfg.AuthEnabled() {
		c.AuthService = middleware.NewAuthService(&middleware.AuthConfig{
			JWTSecret:     cfg.JWT.Secret,
			TokenDuration: time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
		})
	}

	c.Store, err = storage.New(&storage.Config{Type: storage.TypeLocal, BasePath: cfg.Export.Dir}, exportRetry(cfg), logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create export store: %w", err)
	}

	return c, nil
}

// DocsOptions maps the catalog configuration onto the document header
func DocsOptions(cfg *config.Config) docs.Options {
	return docs.Options{
		Title:       cfg.Catalog.Title,
		Description: cfg.Catalog.Description,
		Version:     cfg.Catalog.Version,
		ServerURL:   cfg.Catalog.ServerURL,
		Catalog:     catalog.Options{PreserveLegacyShapes: cfg.Catalog.PreserveLegacyShapes},
	}
}

func exportRetry(cfg *config.Config) *storage.RetryConfig {
	retry := storage.DefaultRetryConfig()
	if cfg.Export.MaxRetries > 0 {
		retry.MaxAttempts = cfg.Export.MaxRetries
	}
	if cfg.Export.RetryDelay > 0 {
		retry.InitialDelay = cfg.Export.RetryDelay
	}
	return retry
}

// Router builds the gin engine with middleware and all routes
func (c *Container) Router(version string) *gin.Engine {
	router := gin.New()

	handlers.SetupMiddleware(router, &handlers.MiddlewareConfig{
		Logger:      c.Logger,
		CORSOrigins: c.Config.CORSOrigins,
		RateRPS:     c.Config.RateLimit.RPS,
		RateBurst:   c.Config.RateLimit.Burst,
	})

	routerConfig := &handlers.RouterConfig{
		CatalogService: c.CatalogService,
		AuthService:    c.AuthService,
		Logger:         c.Logger,
		Version:        version,
	}
	if c.repos != nil {
		routerConfig.HealthCheck = c.repos.Health
	}
	handlers.SetupRoutes(router, routerConfig)

	if !c.Config.IsProduction() {
		handlers.SetupDevelopmentRoutes(router, routerConfig)
	}
	return router
}

// Repositories returns the snapshot repositories, or nil when the container
// was built without a snapshot store
func (c *Container) Repositories() repositories.RepositoryManager {
	return c.repos
}

// Migrations returns the migration manager of the snapshot store, or nil
// when the container was built without one
func (c *Container) Migrations() *database.MigrationManager {
	if c.db == nil {
		return nil
	}
	return c.db.GetMigrationManager()
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			return fmt.Errorf("failed to close export store: %w", err)
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
