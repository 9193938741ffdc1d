// Package storage writes rendered catalog artifacts (openapi.json,
// openapi.yaml, per-domain documents) to a backing store.
package storage

import (
	"context"
	"time"
)

// Artifact describes one stored file
type Artifact struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	Checksum     string    `json:"checksum,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// PutOptions controls how an artifact is written
type PutOptions struct {
	ContentType string
	// Overwrite replaces an existing artifact; otherwise Put fails with
	// ErrArtifactExists
	Overwrite bool
}

// ArtifactStore is the export target for rendered catalog documents
type ArtifactStore interface {
	// Put writes data under key
	Put(ctx context.Context, key string, data []byte, opts *PutOptions) error

	// Get reads the artifact stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Stat returns the artifact description without its data
	Stat(ctx context.Context, key string) (*Artifact, error)

	Exists(ctx context.Context, key string) (bool, error)

	Delete(ctx context.Context, key string) error

	// List returns the artifacts whose key starts with prefix, sorted by key
	List(ctx context.Context, prefix string) ([]Artifact, error)

	Close() error
}

// Config selects and configures a store
type Config struct {
	Type     string `mapstructure:"type"`
	BasePath string `mapstructure:"base_path"`
}
