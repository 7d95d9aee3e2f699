package usecase

import (
	"review-insight-srv/internal/filter"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/progress"
)

// Config holds the LLM filtering policy. Zero values take the package
// defaults.
type Config struct {
	Enabled              bool
	MaxReviews           int // ceiling above which heuristics run directly
	BatchSize            int
	MaxConcurrentBatches int
	RetryAttempts        int
	RetryDelayMs         int
	RateLimitDelayMs     int
	MaxTokens            int
	Temperature          float64
}

type implUseCase struct {
	gemini gemini.IGemini // nil when no API credential is configured
	sink   progress.Sink
	l      log.Logger
	cfg    Config
}

// New creates a new filter UseCase implementation. A nil gemini client
// disables the LLM path entirely.
func New(geminiClient gemini.IGemini, sink progress.Sink, l log.Logger, cfg Config) filter.UseCase {
	if cfg.MaxReviews <= 0 {
		cfg.MaxReviews = filter.DefaultMaxReviews
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = filter.DefaultBatchSize
	}
	if cfg.MaxConcurrentBatches <= 0 {
		cfg.MaxConcurrentBatches = filter.DefaultMaxConcurrentBatches
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = filter.DefaultRetryAttempts
	}
	if cfg.RetryDelayMs <= 0 {
		cfg.RetryDelayMs = filter.DefaultRetryDelayMs
	}
	if cfg.RateLimitDelayMs <= 0 {
		cfg.RateLimitDelayMs = filter.DefaultRateLimitDelayMs
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 200
	}
	if sink == nil {
		sink = progress.Nop{}
	}

	return &implUseCase{
		gemini: geminiClient,
		sink:   sink,
		l:      l,
		cfg:    cfg,
	}
}
