package usecase

import (
	"review-insight-srv/internal/steps"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/progress"
)

type Config struct {
	MaxPerBucket int
	MaxTokens    int
	Temperature  float64
}

type implUseCase struct {
	gemini gemini.IGemini // nil when no API credential is configured
	sink   progress.Sink
	l      log.Logger
	cfg    Config
}

// New creates a new steps UseCase implementation. A nil gemini client
// routes every call straight to the mock fallback.
func New(geminiClient gemini.IGemini, sink progress.Sink, l log.Logger, cfg Config) steps.UseCase {
	if cfg.MaxPerBucket <= 0 {
		cfg.MaxPerBucket = steps.DefaultMaxPerBucket
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = steps.DefaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = steps.DefaultTemperature
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
