package competitor

import "review-insight-srv/internal/analysis"

// Defaults and thresholds for competitor discovery.
const (
	DefaultMaxCompetitors = 10
	DefaultSearchLimit    = 20
	DefaultMaxPages       = 1

	// Candidate filters.
	MinRatingCount   = 10
	MinAverageRating = 2.0
	// Minimum share of significant app-name tokens that must appear in
	// a candidate's description when the genres differ.
	NameOverlapThreshold = 0.3
)

// Market positions, classified by 0.5-star bands relative to the market
// mean.
const (
	PositionLeader     = "leader"
	PositionChallenger = "challenger"
	PositionFollower   = "follower"
	PositionNiche      = "niche"
)

// AnalyzeInput identifies the app whose market to analyze.
type AnalyzeInput struct {
	AppID   string
	Regions []string
}

// Competitor is one comparable app with its aggregated review metrics.
type Competitor struct {
	AppID           string                  `json:"app_id"`
	Name            string                  `json:"name"`
	Genre           string                  `json:"genre"`
	AverageRating   float64                 `json:"average_rating"`
	RatingCount     int                     `json:"rating_count"`
	RankScore       float64                 `json:"rank_score"` // rating x log(count+1)
	BasicStats      analysis.BasicStats     `json:"basic_stats"`
	TrendData       []analysis.TrendPoint   `json:"trend_data"`
	VersionAnalysis []analysis.VersionStats `json:"version_analysis"`
	KeywordAnalysis []analysis.KeywordStats `json:"keyword_analysis"`
	Positive        int                     `json:"positive"`
	Negative        int                     `json:"negative"`
	Neutral         int                     `json:"neutral"`
}

// MarketAnalysis is the market-level view around the primary app.
type MarketAnalysis struct {
	MarketAverageRating float64  `json:"market_average_rating"`
	Leader              string   `json:"leader"`
	Position            string   `json:"position"`
	MarketShare         float64  `json:"market_share"` // share of the combined rating-count pool
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	Opportunities       []string `json:"opportunities"`
	Threats             []string `json:"threats"`
	Recommendations     []string `json:"recommendations"`
}

// AnalyzeOutput is the competitor analysis result.
type AnalyzeOutput struct {
	AppID       string         `json:"app_id"`
	AppName     string         `json:"app_name"`
	Competitors []Competitor   `json:"competitors"`
	Market      MarketAnalysis `json:"market"`
}
