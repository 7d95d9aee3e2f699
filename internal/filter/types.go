package filter

import "review-insight-srv/internal/model"

// Defaults for the LLM filtering policy.
const (
	DefaultBatchSize            = 5
	DefaultMaxConcurrentBatches = 3
	DefaultRetryAttempts        = 3
	DefaultRetryDelayMs         = 1000
	DefaultRateLimitDelayMs     = 1000
	DefaultMaxReviews           = 100
)

// FilterInput is the review set to classify.
type FilterInput struct {
	Reviews []model.Review
}

// FilterOutput partitions the input into informative and non-informative
// reviews, each paired with its verdict. The two slices always cover the
// whole input: no review is lost or duplicated.
type FilterOutput struct {
	Informative    []model.ClassifiedReview `json:"informative"`
	NonInformative []model.ClassifiedReview `json:"non_informative"`
	UsedLLM        bool                     `json:"used_llm"`
}
