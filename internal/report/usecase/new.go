package usecase

import (
	"time"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/report"
	"review-insight-srv/internal/report/repository"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/minio"
)

const (
	defaultReportBucket = "insight-reports"
	defaultReuseWindow  = 1 * time.Hour
	defaultURLExpiry    = 30 * time.Minute
)

// Config holds configuration for report generation.
type Config struct {
	ReportBucket string
	ReuseWindow  time.Duration // completed reports younger than this are reused
	URLExpiry    time.Duration
}

type implUseCase struct {
	repo       repository.Repository
	analysisUC analysis.UseCase
	minio      minio.MinIO
	l          log.Logger
	cfg        Config
}

// New creates a new report UseCase implementation.
func New(
	repo repository.Repository,
	analysisUC analysis.UseCase,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.ReportBucket == "" {
		cfg.ReportBucket = defaultReportBucket
	}
	if cfg.ReuseWindow <= 0 {
		cfg.ReuseWindow = defaultReuseWindow
	}
	if cfg.URLExpiry <= 0 {
		cfg.URLExpiry = defaultURLExpiry
	}

	return &implUseCase{
		repo:       repo,
		analysisUC: analysisUC,
		minio:      minioClient,
		l:          l,
		cfg:        cfg,
	}
}
