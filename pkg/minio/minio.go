package minio

import (
	"context"
	"fmt"

	miniogo "github.com/minio/minio-go/v7"
)

// EnsureBucket creates the bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("minio: failed to check bucket %q: %w", bucketName, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %q: %w", bucketName, err)
	}
	return nil
}

// UploadFile stores one object.
func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size,
		miniogo.PutObjectOptions{
			ContentType:  req.ContentType,
			UserMetadata: req.Metadata,
		})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to upload %q: %w", req.ObjectName, err)
	}
	return &FileInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       info.Size,
		ETag:       info.ETag,
	}, nil
}

// GetPresignedDownloadURL generates a time-limited download URL.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	u, err := m.client.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, nil)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to presign %q: %w", req.ObjectName, err)
	}
	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: timeNow().Add(req.Expiry),
	}, nil
}

// HealthCheck verifies the endpoint is reachable.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	if _, err := m.client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}
