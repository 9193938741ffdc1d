package storage

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Store types
const (
	TypeLocal  = "local"
	TypeMemory = "memory"
)

// New creates the configured store wrapped in retries. A nil retry config
// disables the wrapper.
func New(config *Config, retry *RetryConfig, logger *logrus.Logger) (ArtifactStore, error) {
	if config == nil {
		return nil, fmt.Errorf("storage config is required")
	}

	var store ArtifactStore
	switch strings.ToLower(config.Type) {
	case TypeLocal, "":
		basePath := config.BasePath
		if basePath == "" {
			basePath = "./out"
		}
		local, err := NewLocalStore(basePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local storage: %w", err)
		}
		store = local
	case TypeMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", config.Type)
	}

	if retry != nil {
		store = NewRetryStore(store, retry, logger)
	}
	return store, nil
}
