package minio

import (
	"io"
	"time"
)

// MinIOConfig holds the configuration for the MinIO client.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// UploadRequest describes one object upload.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName string
	ObjectName string
	Size       int64
	ETag       string
}

// PresignedURLRequest describes a presigned download URL request.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
}

// PresignedURLResponse carries the generated URL and its expiry.
type PresignedURLResponse struct {
	URL       string
	ExpiresAt time.Time
}
