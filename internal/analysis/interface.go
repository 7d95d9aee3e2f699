package analysis

import (
	"context"

	"review-insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze runs the full pipeline for one app: fetch, filter,
	// aggregate, score sentiment and synthesize steps.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// FetchReviews fetches the de-duplicated review set for an app
	// without running the pipeline. Used by consumers that bring their
	// own processing, like categorization.
	FetchReviews(ctx context.Context, input AnalyzeInput) ([]model.Review, error)
}
