package categorizer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Categorize assigns an issue category to each eligible negative
	// review. Degrades to keyword categorization on total LLM failure.
	Categorize(ctx context.Context, input CategorizeInput) (CategorizeOutput, error)
}
