package categorizer

import "review-insight-srv/internal/model"

// Defaults for the negative-review categorization policy.
const (
	DefaultBatchSize = 10

	// Quality sub-filter thresholds. Short one-liners give the model
	// almost no signal, so they are skipped when longer reviews exist.
	MinQualityChars  = 60
	MinQualityTokens = 4

	// Only reviews at or below this rating are eligible.
	MaxEligibleRating = 3
)

// CategorizeInput is the raw review set; the usecase applies the
// negative-rating pre-filter itself.
type CategorizeInput struct {
	Reviews []model.Review
}

// CategoryResult is one review's assigned issue category.
type CategoryResult struct {
	ReviewID   string  `json:"review_id"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// CategorizeOutput carries the per-review categories plus any batch
// errors recorded along the way. Batch failures never abort the run.
type CategorizeOutput struct {
	Categories       []CategoryResult `json:"categories"`
	ProcessingTimeMs int64            `json:"processing_time_ms"`
	Errors           []string         `json:"errors,omitempty"`
	UsedLLM          bool             `json:"used_llm"`
}
