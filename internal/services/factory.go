package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"business-catalog-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	CatalogService CatalogService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Catalog *CatalogConfig
}

// NewServiceContainer creates the services. repos may be nil when no
// snapshot store is configured.
func NewServiceContainer(repos repositories.RepositoryManager, config *ServiceConfig, logger *logrus.Logger) (*ServiceContainer, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	catalogService, err := NewCatalogService(config.Catalog, repos, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	return &ServiceContainer{
		CatalogService: catalogService,
	}, nil
}
