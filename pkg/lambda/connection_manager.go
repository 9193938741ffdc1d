package lambda

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"business-catalog-api/internal/config"
	"business-catalog-api/pkg/server"
)

// ConnectionManager keeps the service container alive across warm invocations
type ConnectionManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	logger      *logrus.Logger
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		logger := logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		globalConnectionManager = &ConnectionManager{logger: logger}
	})
	return globalConnectionManager
}

// Initialize builds the read-only container. Calls after a successful
// initialization are no-ops.
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized {
		return nil
	}
	if cm.logger == nil {
		cm.logger = logrus.New()
	}

	container, err := server.NewReadOnlyContainer(cfg, cm.logger)
	if err != nil {
		return err
	}

	cm.container = container
	cm.lastUsed = time.Now()
	cm.initialized = true
	cm.logger.WithField("mode", config.GetDeploymentMode()).Info("Lambda container initialized")
	return nil
}

// GetContainer returns the service container, initializing it from the
// environment when necessary
func (cm *ConnectionManager) GetContainer() (*server.Container, error) {
	cm.mu.Lock()
	if cm.initialized {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cm.mu.Unlock()

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}
	if err := cm.Initialize(cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// IsHealthy reports whether a container was used in the last five minutes
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if !cm.initialized || cm.container == nil {
		return false
	}
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup releases the container
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}
