package sentimodel

import (
	"context"
	"fmt"
	"time"

	pkghttp "review-insight-srv/pkg/http"
)

// IModel defines the interface for the external text-classification model.
// Classify returns the top (label, score) pair per input text, in input order.
// Implementations are safe for concurrent use.
type IModel interface {
	Classify(ctx context.Context, texts []string) ([]Label, error)
}

// NewModel creates a new sentiment model client. ModelURL defaults to
// DefaultModelURL if empty. APIKey must be set; Classify returns an error
// if it is empty.
func NewModel(cfg SentimentConfig) (IModel, error) {
	if cfg.ModelURL == "" {
		cfg.ModelURL = DefaultModelURL
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("sentimodel: API key is required")
	}
	timeout := 30 * time.Second
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &sentimodelImpl{
		apiKey:   cfg.APIKey,
		modelURL: cfg.ModelURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   timeout,
			Retries:   1,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
