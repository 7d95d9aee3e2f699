// Package repository caches analysis results between runs.
package repository

import (
	"context"
	"errors"

	"review-insight-srv/internal/analysis"
)

var ErrNotFound = errors.New("analysis not found in cache")

//go:generate mockery --name Repository
type Repository interface {
	// GetAnalysis returns a cached result or ErrNotFound.
	GetAnalysis(ctx context.Context, appID string, regions []string) (analysis.AnalyzeOutput, error)
	// SaveAnalysis stores a result with the configured TTL. Best effort;
	// callers treat failures as non-fatal.
	SaveAnalysis(ctx context.Context, output analysis.AnalyzeOutput) error
}
