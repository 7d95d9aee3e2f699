package aggregate

import (
	"sort"
	"strings"
	"time"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/model"
)

// Complaint keyword sets. A review may count toward several categories.
var (
	crashKeywords       = []string{"crash", "freeze", "frozen", "won't open", "wont open", "closes"}
	performanceKeywords = []string{"slow", "lag", "battery", "loading", "performance", "memory"}
	bugKeywords         = []string{"bug", "issue", "problem", "glitch", "error", "broken", "crash"}
	speedKeywords       = []string{"slow", "loading", "speed"}
	lagKeywords         = []string{"lag", "laggy", "stutter"}
	freezeKeywords      = []string{"freeze", "frozen", "stuck", "unresponsive"}
)

// DynamicMetrics derives the dashboard deltas. All windows anchor at the
// latest review date so results are stable for a fixed corpus.
func DynamicMetrics(reviews []model.Review, trend []analysis.TrendPoint) analysis.DynamicMetrics {
	anchor := latestDate(reviews)
	return analysis.DynamicMetrics{
		RatingTrend:        ratingTrend(reviews, trend, anchor),
		UserComplaints:     userComplaints(reviews),
		PerformanceMetrics: performanceMetrics(reviews, anchor),
		KeywordTrends:      keywordTrends(reviews, anchor),
		TimeStats:          timeStats(reviews, anchor),
		ImpactAssessment:   impactAssessment(reviews),
	}
}

func latestDate(reviews []model.Review) time.Time {
	var latest time.Time
	for _, r := range reviews {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	return latest
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countMatching(reviews []model.Review, keywords []string) int {
	count := 0
	for _, r := range reviews {
		if matchesAny(strings.ToLower(r.Text()), keywords) {
			count++
		}
	}
	return count
}

// window returns the reviews dated within (anchor-from, anchor-to].
func window(reviews []model.Review, anchor time.Time, from, to int) []model.Review {
	lower := anchor.AddDate(0, 0, -from)
	upper := anchor.AddDate(0, 0, -to)
	var out []model.Review
	for _, r := range reviews {
		if r.Date.IsZero() {
			continue
		}
		if r.Date.After(lower) && !r.Date.After(upper) {
			out = append(out, r)
		}
	}
	return out
}

// ratingTrend compares the most recent 7 and 30 day windows against the
// windows before them. Direction reacts only to monthly moves beyond
// 0.1 stars; smaller moves are noise.
func ratingTrend(reviews []model.Review, trend []analysis.TrendPoint, anchor time.Time) analysis.RatingTrend {
	if len(trend) < 2 {
		return analysis.RatingTrend{Direction: "stable", InsufficientData: true}
	}

	weekly := windowDelta(reviews, anchor, 7)
	monthly := windowDelta(reviews, anchor, 30)

	direction := "stable"
	if monthly > 0.1 {
		direction = "up"
	} else if monthly < -0.1 {
		direction = "down"
	}

	return analysis.RatingTrend{
		WeeklyChange:  Round2(weekly),
		MonthlyChange: Round2(monthly),
		Direction:     direction,
	}
}

// windowDelta is mean(most recent days) minus mean(the days before
// them). An empty window contributes a zero mean.
func windowDelta(reviews []model.Review, anchor time.Time, days int) float64 {
	recent := window(reviews, anchor, days, 0)
	prior := window(reviews, anchor, 2*days, days)
	return MeanRating(recent) - MeanRating(prior)
}

func userComplaints(reviews []model.Review) analysis.ComplaintCounts {
	return analysis.ComplaintCounts{
		Crashes:     countMatching(reviews, crashKeywords),
		Performance: countMatching(reviews, performanceKeywords),
		Bugs:        countMatching(reviews, bugKeywords),
	}
}

func performanceMetrics(reviews []model.Review, anchor time.Time) analysis.PerformanceMetrics {
	var lowRated []model.Review
	for _, r := range reviews {
		if r.Rating <= 3 {
			lowRated = append(lowRated, r)
		}
	}

	recentSpeed := countMatching(window(lowRated, anchor, 30, 0), speedKeywords)
	priorSpeed := countMatching(window(lowRated, anchor, 60, 30), speedKeywords)

	return analysis.PerformanceMetrics{
		SpeedComplaints:      countMatching(lowRated, speedKeywords),
		LagComplaints:        countMatching(reviews, lagKeywords),
		FreezeComplaints:     countMatching(reviews, freezeKeywords),
		SpeedComplaintChange: recentSpeed - priorSpeed,
	}
}

// keywordTrends picks the top 5 positive and negative keywords by recent
// (30 day) count, each annotated with its delta against the prior window.
func keywordTrends(reviews []model.Review, anchor time.Time) analysis.KeywordTrends {
	recent := window(reviews, anchor, 30, 0)
	older := window(reviews, anchor, 60, 30)

	var positive, negative []analysis.KeywordTrend
	for _, stat := range KeywordAnalysis(recent) {
		trend := analysis.KeywordTrend{
			Keyword:     stat.Keyword,
			RecentCount: stat.Count,
			Delta:       stat.Count - keywordCount(older, stat.Keyword),
		}
		switch stat.Sentiment {
		case "positive":
			positive = append(positive, trend)
		case "negative":
			negative = append(negative, trend)
		}
	}

	// KeywordAnalysis is already count-descending, so a front slice is
	// the top 5.
	if len(positive) > 5 {
		positive = positive[:5]
	}
	if len(negative) > 5 {
		negative = negative[:5]
	}
	return analysis.KeywordTrends{Positive: positive, Negative: negative}
}

func keywordCount(reviews []model.Review, keyword string) int {
	count := 0
	for _, r := range reviews {
		if strings.Contains(strings.ToLower(r.Text()), keyword) {
			count++
		}
	}
	return count
}

func timeStats(reviews []model.Review, anchor time.Time) analysis.TimeStats {
	var dates []time.Time
	for _, r := range reviews {
		if !r.Date.IsZero() {
			dates = append(dates, r.Date)
		}
	}
	if len(dates) == 0 {
		return analysis.TimeStats{}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	spanDays := int(dates[len(dates)-1].Sub(dates[0]).Hours()/24) + 1
	avg := float64(len(dates)) / float64(spanDays)

	return analysis.TimeStats{
		SpanDays:         spanDays,
		Weeks:            (spanDays + 6) / 7,
		AvgReviewsPerDay: Round2(avg),
		Last7Days:        len(window(reviews, anchor, 7, 0)),
		Last30Days:       len(window(reviews, anchor, 30, 0)),
		Last90Days:       len(window(reviews, anchor, 90, 0)),
	}
}

// impactAssessment maps complaint volumes onto severity tiers. Crashes
// are excluded from low to avoid double counting, clamped at zero since
// the keyword sets overlap without a subset guarantee.
func impactAssessment(reviews []model.Review) analysis.ImpactAssessment {
	crashes := countMatching(reviews, crashKeywords)
	bugs := countMatching(reviews, bugKeywords)

	low := bugs - crashes
	if low < 0 {
		low = 0
	}

	return analysis.ImpactAssessment{
		Critical: crashes,
		High:     countMatching(reviews, performanceKeywords),
		Medium:   countMatching(reviews, lagKeywords) + countMatching(reviews, freezeKeywords),
		Low:      low,
	}
}
