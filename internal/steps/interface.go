package steps

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate synthesizes prioritized actionable steps from the review
	// corpus. Always returns a well-formed result: LLM failure at any
	// stage short-circuits to a canned fallback.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
