package filter

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// FilterMany classifies every review as informative or not. It never
	// fails outright: LLM errors degrade to heuristic verdicts.
	FilterMany(ctx context.Context, input FilterInput) (FilterOutput, error)
}
