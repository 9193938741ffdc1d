package storage

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"business-catalog-api/internal/catalog"
)

// LocalStore keeps artifacts as files below a base directory
type LocalStore struct {
	basePath string
}

// NewLocalStore creates the base directory if needed
func NewLocalStore(basePath string) (*LocalStore, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, NewStorageError("open", "", err, false)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, NewStorageError("open", "", err, false)
	}
	return &LocalStore{basePath: absPath}, nil
}

// BasePath returns the absolute export directory
func (l *LocalStore) BasePath() string {
	return l.basePath
}

// Put writes the artifact through a temp file and rename
func (l *LocalStore) Put(ctx context.Context, key string, data []byte, opts *PutOptions) error {
	if err := validateKey(key); err != nil {
		return NewStorageError("put", key, err, false)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	filePath := l.path(key)
	if opts != nil && !opts.Overwrite {
		if _, err := os.Stat(filePath); err == nil {
			return NewStorageError("put", key, ErrArtifactExists, false)
		}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return NewStorageError("put", key, err, true)
	}

	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return NewStorageError("put", key, err, true)
	}
	if err := os.Rename(tempPath, filePath); err != nil {
		os.Remove(tempPath)
		return NewStorageError("put", key, err, true)
	}
	return nil
}

// Get reads an artifact
func (l *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, NewStorageError("get", key, err, false)
	}

	data, err := os.ReadFile(l.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewStorageError("get", key, ErrArtifactNotFound, false)
		}
		return nil, NewStorageError("get", key, err, true)
	}
	return data, nil
}

// Stat describes an artifact; the checksum is computed from its content
func (l *LocalStore) Stat(ctx context.Context, key string) (*Artifact, error) {
	data, err := l.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(l.path(key))
	if err != nil {
		return nil, NewStorageError("stat", key, err, true)
	}
	a := describe(key, info)
	a.Checksum = catalog.ChecksumOf(data)
	return &a, nil
}

// Exists reports whether key is stored
func (l *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, NewStorageError("exists", key, err, false)
	}

	_, err := os.Stat(l.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, NewStorageError("exists", key, err, true)
	}
	return true, nil
}

// Delete removes an artifact
func (l *LocalStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return NewStorageError("delete", key, err, false)
	}

	if err := os.Remove(l.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewStorageError("delete", key, ErrArtifactNotFound, false)
		}
		return NewStorageError("delete", key, err, true)
	}
	return nil
}

// List walks the base directory
func (l *LocalStore) List(ctx context.Context, prefix string) ([]Artifact, error) {
	var artifacts []Artifact
	err := filepath.WalkDir(l.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(path, ".tmp") {
			return nil
		}

		rel, err := filepath.Rel(l.basePath, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		artifacts = append(artifacts, describe(key, info))
		return nil
	})
	if err != nil {
		return nil, NewStorageError("list", prefix, err, true)
	}

	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Key < artifacts[j].Key })
	return artifacts, nil
}

// Close is a no-op for the filesystem
func (l *LocalStore) Close() error {
	return nil
}

func (l *LocalStore) path(key string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(key))
}

func describe(key string, info fs.FileInfo) Artifact {
	return Artifact{
		Key:          key,
		Size:         info.Size(),
		ContentType:  ContentType(key),
		LastModified: info.ModTime(),
	}
}

// ContentType derives the media type of an artifact from its extension
func ContentType(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".yaml", ".yml":
		return "application/yaml"
	case ".json":
		return "application/json"
	}
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// keys are slash separated and relative; traversal is rejected
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") || strings.Contains(key, "\\") {
		return ErrInvalidKey
	}
	return nil
}
