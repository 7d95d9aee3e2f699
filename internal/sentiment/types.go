package sentiment

import "review-insight-srv/internal/model"

// Defaults for the sentiment scoring policy.
const (
	DefaultBatchSize        = 10
	DefaultBatchDelayMs     = 200
	DefaultNeutralScore     = 0.5
	PositiveRatingThreshold = 4
	NegativeRatingThreshold = 2
)

// Normalized sentiment labels.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// ScoreInput is the review set to score.
type ScoreInput struct {
	Reviews []model.Review
}

// ScoreOutput carries sentiment counts, never raw per-review labels.
// Invariant: Positive + Negative + Neutral == Total, for every input
// size including zero.
type ScoreOutput struct {
	Positive  int  `json:"positive"`
	Negative  int  `json:"negative"`
	Neutral   int  `json:"neutral"`
	Total     int  `json:"total"`
	UsedModel bool `json:"used_model"`
}
