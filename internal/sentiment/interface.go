package sentiment

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Score maps reviews to positive/negative/neutral counts. Model
	// failures degrade per item; total model unavailability falls back
	// to rating thresholds. Never returns an error for non-empty input.
	Score(ctx context.Context, input ScoreInput) ScoreOutput
}
