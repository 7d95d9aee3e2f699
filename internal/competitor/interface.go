package competitor

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze discovers comparable apps and computes relative market
	// metrics for the primary app.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
