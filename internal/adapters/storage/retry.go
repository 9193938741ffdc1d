package storage

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryConfig configures exponential backoff for storage operations
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterEnabled bool
}

// DefaultRetryConfig returns the export retry policy
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// WithRetry runs op until it succeeds, fails permanently or the attempts
// run out. The last error is returned.
func WithRetry(ctx context.Context, config *RetryConfig, op func(ctx context.Context) error) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	var lastErr error
	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt >= config.MaxAttempts || !IsRetryable(lastErr) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(config.delay(attempt)):
		}
	}
	return lastErr
}

// delay = initial * factor^(attempt-1), capped, plus up to 10% jitter
func (c *RetryConfig) delay(attempt int) time.Duration {
	d := float64(c.InitialDelay) * math.Pow(c.BackoffFactor, float64(attempt-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	if c.JitterEnabled {
		d += rand.Float64() * 0.1 * d
	}
	return time.Duration(d)
}

// RetryStore decorates an ArtifactStore with retries on transient failures
type RetryStore struct {
	store  ArtifactStore
	config *RetryConfig
	logger *logrus.Logger
}

// NewRetryStore wraps store
func NewRetryStore(store ArtifactStore, config *RetryConfig, logger *logrus.Logger) *RetryStore {
	if config == nil {
		config = DefaultRetryConfig()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &RetryStore{store: store, config: config, logger: logger}
}

func (r *RetryStore) do(ctx context.Context, op, key string, fn func(ctx context.Context) error) error {
	attempt := 0
	err := WithRetry(ctx, r.config, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && IsRetryable(err) && attempt < r.config.MaxAttempts {
			r.logger.WithFields(logrus.Fields{
				"op":      op,
				"key":     key,
				"attempt": attempt,
				"error":   err.Error(),
			}).Warn("Storage operation failed, retrying")
		}
		return err
	})
	return err
}

func (r *RetryStore) Put(ctx context.Context, key string, data []byte, opts *PutOptions) error {
	return r.do(ctx, "put", key, func(ctx context.Context) error {
		return r.store.Put(ctx, key, data, opts)
	})
}

func (r *RetryStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.do(ctx, "get", key, func(ctx context.Context) error {
		var err error
		data, err = r.store.Get(ctx, key)
		return err
	})
	return data, err
}

func (r *RetryStore) Stat(ctx context.Context, key string) (*Artifact, error) {
	var a *Artifact
	err := r.do(ctx, "stat", key, func(ctx context.Context) error {
		var err error
		a, err = r.store.Stat(ctx, key)
		return err
	})
	return a, err
}

func (r *RetryStore) Exists(ctx context.Context, key string) (bool, error) {
	var ok bool
	err := r.do(ctx, "exists", key, func(ctx context.Context) error {
		var err error
		ok, err = r.store.Exists(ctx, key)
		return err
	})
	return ok, err
}

func (r *RetryStore) Delete(ctx context.Context, key string) error {
	return r.do(ctx, "delete", key, func(ctx context.Context) error {
		return r.store.Delete(ctx, key)
	})
}

func (r *RetryStore) List(ctx context.Context, prefix string) ([]Artifact, error) {
	var artifacts []Artifact
	err := r.do(ctx, "list", prefix, func(ctx context.Context) error {
		var err error
		artifacts, err = r.store.List(ctx, prefix)
		return err
	})
	return artifacts, err
}

func (r *RetryStore) Close() error {
	return r.store.Close()
}
