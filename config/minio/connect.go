package minio

import (
	"context"
	"fmt"
	"sync"

	"review-insight-srv/config"
	"review-insight-srv/pkg/minio"
)

var (
	instance minio.MinIO
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the MinIO client using a singleton pattern. The
// client verifies connectivity during construction.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := minio.NewMinIO(ctx, minio.MinIOConfig{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
		})
		if e != nil {
			err = fmt.Errorf("failed to create MinIO client: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// HealthCheck checks if the MinIO endpoint is reachable.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}
	return instance.HealthCheck(ctx)
}

// Disconnect resets the singleton. The underlying HTTP client needs no
// explicit shutdown.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	instance = nil
	once = sync.Once{}
	initErr = nil
	return nil
}
