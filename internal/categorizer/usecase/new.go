package usecase

import (
	"review-insight-srv/internal/categorizer"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/log"
)

type Config struct {
	Enabled   bool
	BatchSize int
	MaxTokens int
}

type implUseCase struct {
	gemini gemini.IGemini
	l      log.Logger
	cfg    Config
}

// New creates a new categorizer UseCase implementation.
func New(geminiClient gemini.IGemini, l log.Logger, cfg Config) categorizer.UseCase {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = categorizer.DefaultBatchSize
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1500
	}
	return &implUseCase{
		gemini: geminiClient,
		l:      l,
		cfg:    cfg,
	}
}
