package model

// Review categories assigned by the informativeness filter.
const (
	CategoryBug            = "bug"
	CategoryFeature        = "feature"
	CategoryPerformance    = "performance"
	CategoryUI             = "ui"
	CategoryGeneral        = "general"
	CategoryNonInformative = "non-informative"
)

// FilterVerdict is the classification attached to one review by the
// informativeness filter. Not persisted beyond one analysis run.
type FilterVerdict struct {
	IsInformative bool    `json:"is_informative"`
	Confidence    float64 `json:"confidence"` // 0..1
	Reason        string  `json:"reason"`
	Category      string  `json:"category"`
}

// ClassifiedReview pairs a review with its verdict.
type ClassifiedReview struct {
	Review  Review        `json:"review"`
	Verdict FilterVerdict `json:"verdict"`
}
