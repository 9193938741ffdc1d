package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]ArtifactStore {
	local, err := NewLocalStore(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	return map[string]ArtifactStore{
		"local":  local,
		"memory": NewMemoryStore(),
	}
}

func TestArtifactStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			data := []byte(`{"openapi":"3.0.3"}`)
			require.NoError(t, store.Put(ctx, "openapi.json", data, nil))
			require.NoError(t, store.Put(ctx, "domains/hr.json", []byte(`{}`), nil))

			got, err := store.Get(ctx, "openapi.json")
			require.NoError(t, err)
			assert.Equal(t, data, got)

			a, err := store.Stat(ctx, "openapi.json")
			require.NoError(t, err)
			assert.Equal(t, int64(len(data)), a.Size)
			assert.Equal(t, "application/json", a.ContentType)
			assert.Len(t, a.Checksum, 64)

			ok, err := store.Exists(ctx, "domains/hr.json")
			require.NoError(t, err)
			assert.True(t, ok)

			list, err := store.List(ctx, "domains/")
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "domains/hr.json", list[0].Key)

			err = store.Put(ctx, "openapi.json", data, &PutOptions{Overwrite: false})
			assert.True(t, IsExists(err))
			require.NoError(t, store.Put(ctx, "openapi.json", []byte(`{}`), &PutOptions{Overwrite: true}))

			require.NoError(t, store.Delete(ctx, "openapi.json"))
			_, err = store.Get(ctx, "openapi.json")
			assert.True(t, IsNotFound(err))
			assert.True(t, IsNotFound(store.Delete(ctx, "openapi.json")))
		})
	}
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "/etc/passwd", "../escape.json", `a\b.json`} {
		err := store.Put(context.Background(), key, []byte("x"), nil)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestLocalStore_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "openapi.yaml", []byte("openapi: 3.0.3\n"), nil))
	data, err := os.ReadFile(filepath.Join(dir, "openapi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.3\n", string(data))

	_, err = os.Stat(filepath.Join(dir, "openapi.yaml.tmp"))
	assert.True(t, os.IsNotExist(err))
}

// flakyStore fails the first n Puts with a retryable error
type flakyStore struct {
	*MemoryStore
	failures int
	calls    int
	err      error
}

func (f *flakyStore) Put(ctx context.Context, key string, data []byte, opts *PutOptions) error {
	f.calls++
	if f.calls <= f.failures {
		return f.err
	}
	return f.MemoryStore.Put(ctx, key, data, opts)
}

func fastRetry() *RetryConfig {
	return &RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, BackoffFactor: 2}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRetryStore(t *testing.T) {
	ctx := context.Background()
	transient := NewStorageError("put", "openapi.json", ErrStorageUnavailable, true)

	t.Run("recovers from transient failures", func(t *testing.T) {
		flaky := &flakyStore{MemoryStore: NewMemoryStore(), failures: 2, err: transient}
		store := NewRetryStore(flaky, fastRetry(), quietLogger())

		require.NoError(t, store.Put(ctx, "openapi.json", []byte("{}"), nil))
		assert.Equal(t, 3, flaky.calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		flaky := &flakyStore{MemoryStore: NewMemoryStore(), failures: 10, err: transient}
		store := NewRetryStore(flaky, fastRetry(), quietLogger())

		err := store.Put(ctx, "openapi.json", []byte("{}"), nil)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.Equal(t, 3, flaky.calls)
	})

	t.Run("does not retry permanent failures", func(t *testing.T) {
		flaky := &flakyStore{MemoryStore: NewMemoryStore(), failures: 10, err: errors.New("disk full")}
		store := NewRetryStore(flaky, fastRetry(), quietLogger())

		assert.Error(t, store.Put(ctx, "openapi.json", []byte("{}"), nil))
		assert.Equal(t, 1, flaky.calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := WithRetry(cctx, fastRetry(), func(context.Context) error { return transient })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRetryConfig_Delay(t *testing.T) {
	c := &RetryConfig{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, BackoffFactor: 2}
	assert.Equal(t, 100*time.Millisecond, c.delay(1))
	assert.Equal(t, 200*time.Millisecond, c.delay(2))
	assert.Equal(t, 300*time.Millisecond, c.delay(3))
}

func TestNew(t *testing.T) {
	store, err := New(&Config{Type: "memory"}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = New(&Config{Type: "local", BasePath: t.TempDir()}, fastRetry(), quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &RetryStore{}, store)

	_, err = New(&Config{Type: "s3"}, nil, nil)
	assert.Error(t, err)
	_, err = New(nil, nil, nil)
	assert.Error(t, err)
}
