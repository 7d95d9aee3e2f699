package minio

import (
	"context"
	"fmt"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines the object storage operations the service needs.
// Implementations are safe for concurrent use.
type MinIO interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
	HealthCheck(ctx context.Context) error
}

type implMinIO struct {
	client *miniogo.Client
}

// NewMinIO creates a new MinIO client and verifies connectivity.
func NewMinIO(ctx context.Context, cfg MinIOConfig) (MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio: endpoint is required")
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	m := &implMinIO{client: client}
	if err := m.HealthCheck(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
