package usecase

import (
	"review-insight-srv/internal/sentiment"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/sentimodel"
)

type Config struct {
	Enabled      bool
	BatchSize    int
	BatchDelayMs int
}

type implUseCase struct {
	model sentimodel.IModel
	l     log.Logger
	cfg   Config
}

// New creates a new sentiment UseCase implementation. A nil model
// disables the external classification path.
func New(model sentimodel.IModel, l log.Logger, cfg Config) sentiment.UseCase {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = sentiment.DefaultBatchSize
	}
	if cfg.BatchDelayMs <= 0 {
		cfg.BatchDelayMs = sentiment.DefaultBatchDelayMs
	}
	return &implUseCase{
		model: model,
		l:     l,
		cfg:   cfg,
	}
}
