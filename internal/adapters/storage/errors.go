package storage

import (
	"errors"
	"fmt"
)

var (
	ErrArtifactNotFound   = errors.New("artifact not found")
	ErrArtifactExists     = errors.New("artifact already exists")
	ErrInvalidKey         = errors.New("invalid artifact key")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageError carries the failed operation, key and whether a retry may help
type StorageError struct {
	Op        string
	Key       string
	Err       error
	Retryable bool
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s failed for key '%s': %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError
func NewStorageError(op, key string, err error, retryable bool) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err, Retryable: retryable}
}

// IsNotFound reports whether err means the artifact does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArtifactNotFound)
}

// IsExists reports whether err means the artifact is already stored
func IsExists(err error) bool {
	return errors.Is(err, ErrArtifactExists)
}

// IsRetryable reports whether the failed operation can be attempted again
func IsRetryable(err error) bool {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Retryable
	}
	return errors.Is(err, ErrStorageUnavailable)
}
