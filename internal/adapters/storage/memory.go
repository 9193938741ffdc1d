package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"business-catalog-api/internal/catalog"
)

// MemoryStore keeps artifacts in memory. It backs the Lambda export path,
// where the filesystem is read-only outside /tmp, and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string]memoryFile
}

type memoryFile struct {
	data     []byte
	modified time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string]memoryFile)}
}

func (m *MemoryStore) Put(ctx context.Context, key string, data []byte, opts *PutOptions) error {
	if err := validateKey(key); err != nil {
		return NewStorageError("put", key, err, false)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[key]; ok && opts != nil && !opts.Overwrite {
		return NewStorageError("put", key, ErrArtifactExists, false)
	}
	m.files[key] = memoryFile{data: append([]byte(nil), data...), modified: time.Now()}
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[key]
	if !ok {
		return nil, NewStorageError("get", key, ErrArtifactNotFound, false)
	}
	return append([]byte(nil), f.data...), nil
}

func (m *MemoryStore) Stat(ctx context.Context, key string) (*Artifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[key]
	if !ok {
		return nil, NewStorageError("stat", key, ErrArtifactNotFound, false)
	}
	a := m.describe(key, f)
	a.Checksum = catalog.ChecksumOf(f.data)
	return &a, nil
}

func (m *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[key]
	return ok, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[key]; !ok {
		return NewStorageError("delete", key, ErrArtifactNotFound, false)
	}
	delete(m.files, key)
	return nil
}

func (m *MemoryStore) List(ctx context.Context, prefix string) ([]Artifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var artifacts []Artifact
	for key, f := range m.files {
		if strings.HasPrefix(key, prefix) {
			artifacts = append(artifacts, m.describe(key, f))
		}
	}
	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Key < artifacts[j].Key })
	return artifacts, nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) describe(key string, f memoryFile) Artifact {
	return Artifact{
		Key:          key,
		Size:         int64(len(f.data)),
		ContentType:  ContentType(key),
		LastModified: f.modified,
	}
}
