package analysis

import (
	"time"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/sentiment"
	"review-insight-srv/internal/steps"
)

// Defaults for the analysis pipeline.
const (
	DefaultMaxPages      = 3
	DefaultTopReviews    = 3
	DefaultRegionDelayMs = 500
	DefaultCacheTTL      = 15 * time.Minute
)

// AnalyzeInput identifies the app and scope of one analysis run.
type AnalyzeInput struct {
	AppID      string
	Regions    []string
	MinVersion string // inclusive; empty means no version filter
	MaxPages   int    // RSS pages fetched per region
	SkipCache  bool
}

// BasicStats is the headline aggregate over the analyzed set.
type BasicStats struct {
	TotalReviews       int         `json:"total_reviews"`
	AverageRating      float64     `json:"average_rating"` // rounded to 2 decimals
	RatingDistribution map[int]int `json:"rating_distribution"`
}

// TrendPoint is one calendar day's aggregate, UTC date portion.
type TrendPoint struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	AverageRating float64 `json:"average_rating"`
	Count         int     `json:"count"`
}

// VersionStats is one version bucket. Sorted ascending by semantic
// version order.
type VersionStats struct {
	Version       string  `json:"version"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	Neutral       int     `json:"neutral"`
}

// RegionStats is one region bucket. Sorted descending by review count.
type RegionStats struct {
	Region        string  `json:"region"` // upper-cased for display
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	Neutral       int     `json:"neutral"`
}

// KeywordStats is one vocabulary term's match aggregate. Terms with zero
// matches are excluded; sorted descending by count.
type KeywordStats struct {
	Keyword       string  `json:"keyword"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
	Sentiment     string  `json:"sentiment"` // positive/negative/neutral by mean rating
}

// TopReviews holds the best and worst reviews by rating.
type TopReviews struct {
	Positive []model.Review `json:"positive"`
	Negative []model.Review `json:"negative"`
}

// FilteredAnalysis summarizes the informativeness filtering outcome.
type FilteredAnalysis struct {
	InformativeCount    int  `json:"informative_count"`
	NonInformativeCount int  `json:"non_informative_count"`
	UsedLLM             bool `json:"used_llm"`
}

// RatingTrend is the week/month rating delta with a noise-filtered
// direction.
type RatingTrend struct {
	WeeklyChange     float64 `json:"weekly_change"`
	MonthlyChange    float64 `json:"monthly_change"`
	Direction        string  `json:"direction"` // up/down/stable
	InsufficientData bool    `json:"insufficient_data"`
}

// ComplaintCounts counts reviews matching fixed keyword sets. A review
// may count toward multiple categories.
type ComplaintCounts struct {
	Crashes     int `json:"crashes"`
	Performance int `json:"performance"`
	Bugs        int `json:"bugs"`
}

// PerformanceMetrics breaks down speed-related complaints.
type PerformanceMetrics struct {
	SpeedComplaints      int `json:"speed_complaints"` // rating <= 3 only
	LagComplaints        int `json:"lag_complaints"`
	FreezeComplaints     int `json:"freeze_complaints"`
	SpeedComplaintChange int `json:"speed_complaint_change"` // recent 30d minus prior
}

// KeywordTrend is one keyword's recent count with its delta against the
// older window.
type KeywordTrend struct {
	Keyword     string `json:"keyword"`
	RecentCount int    `json:"recent_count"`
	Delta       int    `json:"delta"`
}

// KeywordTrends holds the top positive and negative trending keywords.
type KeywordTrends struct {
	Positive []KeywordTrend `json:"positive"`
	Negative []KeywordTrend `json:"negative"`
}

// TimeStats describes the corpus's activity over time.
type TimeStats struct {
	SpanDays         int     `json:"span_days"`
	Weeks            int     `json:"weeks"`
	AvgReviewsPerDay float64 `json:"avg_reviews_per_day"`
	Last7Days        int     `json:"last_7_days"`
	Last30Days       int     `json:"last_30_days"`
	Last90Days       int     `json:"last_90_days"`
}

// ImpactAssessment maps complaint volumes onto severity tiers. Low
// excludes crashes to avoid double counting and is clamped at zero.
type ImpactAssessment struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// DynamicMetrics are the derived dashboard deltas.
type DynamicMetrics struct {
	RatingTrend        RatingTrend        `json:"rating_trend"`
	UserComplaints     ComplaintCounts    `json:"user_complaints"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	KeywordTrends      KeywordTrends      `json:"keyword_trends"`
	TimeStats          TimeStats          `json:"time_stats"`
	ImpactAssessment   ImpactAssessment   `json:"impact_assessment"`
}

// AnalyzeOutput is the aggregate root: a pure derived view over a fixed
// review set plus one metadata record, never mutated after construction.
type AnalyzeOutput struct {
	AppID             string                `json:"app_id"`
	Regions           []string              `json:"regions"`
	Metadata          *model.AppMetadata    `json:"metadata,omitempty"`
	BasicStats        BasicStats            `json:"basic_stats"`
	SentimentAnalysis sentiment.ScoreOutput `json:"sentiment_analysis"`
	TrendData         []TrendPoint          `json:"trend_data"`
	VersionAnalysis   []VersionStats        `json:"version_analysis"`
	RegionalAnalysis  []RegionStats         `json:"regional_analysis"`
	KeywordAnalysis   []KeywordStats        `json:"keyword_analysis"`
	TopReviews        TopReviews            `json:"top_reviews"`
	FilteredAnalysis  FilteredAnalysis      `json:"filtered_analysis"`
	ActionableSteps   steps.GenerateOutput  `json:"actionable_steps"`
	DynamicMetrics    DynamicMetrics        `json:"dynamic_metrics"`
	GeneratedAt       time.Time             `json:"generated_at"`
	FromCache         bool                  `json:"from_cache"`
}
