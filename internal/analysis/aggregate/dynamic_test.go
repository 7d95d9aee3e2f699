package aggregate

import (
	"testing"
	"time"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/model"
)

func datedReview(rating int, daysAgo int, anchor time.Time, content string) model.Review {
	return model.Review{
		Rating:  rating,
		Date:    anchor.AddDate(0, 0, -daysAgo),
		Content: content,
	}
}

func TestRatingTrendInsufficientData(t *testing.T) {
	got := ratingTrend(nil, []analysis.TrendPoint{{Date: "2026-08-01"}}, time.Time{})
	if !got.InsufficientData {
		t.Error("InsufficientData = false, want true with one trend point")
	}
	if got.Direction != "stable" {
		t.Errorf("Direction = %q, want stable", got.Direction)
	}
}

func TestRatingTrendDirection(t *testing.T) {
	anchor := day("2026-08-30")
	trend := []analysis.TrendPoint{{Date: "a"}, {Date: "b"}}

	t.Run("up", func(t *testing.T) {
		reviews := []model.Review{
			datedReview(5, 5, anchor, ""),
			datedReview(5, 10, anchor, ""),
			datedReview(2, 40, anchor, ""),
			datedReview(2, 45, anchor, ""),
		}
		got := ratingTrend(reviews, trend, anchor)
		if got.Direction != "up" {
			t.Errorf("Direction = %q, want up (monthly change %v)", got.Direction, got.MonthlyChange)
		}
	})

	t.Run("down", func(t *testing.T) {
		reviews := []model.Review{
			datedReview(1, 5, anchor, ""),
			datedReview(2, 10, anchor, ""),
			datedReview(5, 40, anchor, ""),
			datedReview(5, 45, anchor, ""),
		}
		got := ratingTrend(reviews, trend, anchor)
		if got.Direction != "down" {
			t.Errorf("Direction = %q, want down (monthly change %v)", got.Direction, got.MonthlyChange)
		}
	})

	t.Run("stable within threshold", func(t *testing.T) {
		reviews := []model.Review{
			datedReview(4, 5, anchor, ""),
			datedReview(4, 40, anchor, ""),
		}
		got := ratingTrend(reviews, trend, anchor)
		if got.Direction != "stable" {
			t.Errorf("Direction = %q, want stable for zero delta", got.Direction)
		}
	})
}

func TestUserComplaintsOverlap(t *testing.T) {
	// One review mentioning both a crash and slowness counts toward
	// crashes, performance and bugs.
	reviews := []model.Review{
		{Rating: 1, Content: "constant crash and so slow"},
	}
	got := userComplaints(reviews)
	if got.Crashes != 1 || got.Performance != 1 || got.Bugs != 1 {
		t.Errorf("complaints = %+v, want 1/1/1 from the overlapping review", got)
	}
}

func TestPerformanceMetricsSpeedRestrictedToLowRatings(t *testing.T) {
	anchor := day("2026-08-30")
	reviews := []model.Review{
		datedReview(1, 5, anchor, "so slow to load"),
		datedReview(5, 5, anchor, "was slow before, fast now"), // rating > 3, excluded
		datedReview(2, 45, anchor, "slow loading screens"),
	}
	got := performanceMetrics(reviews, anchor)
	if got.SpeedComplaints != 2 {
		t.Errorf("SpeedComplaints = %d, want 2 (low-rated only)", got.SpeedComplaints)
	}
	// One recent, one in the prior 30-day window.
	if got.SpeedComplaintChange != 0 {
		t.Errorf("SpeedComplaintChange = %d, want 0", got.SpeedComplaintChange)
	}
}

func TestImpactAssessmentLowClampedAtZero(t *testing.T) {
	// Crash matches exceed bug matches, so the raw low count would go
	// negative.
	reviews := []model.Review{
		{Rating: 1, Content: "app closes immediately and then it froze"},
	}
	got := impactAssessment(reviews)
	if got.Low < 0 {
		t.Errorf("Low = %d, must never be negative", got.Low)
	}
	if got.Critical != 1 {
		t.Errorf("Critical = %d, want 1", got.Critical)
	}
}

func TestTimeStats(t *testing.T) {
	anchor := day("2026-08-30")
	reviews := []model.Review{
		datedReview(5, 0, anchor, ""),
		datedReview(4, 6, anchor, ""),
		datedReview(3, 20, anchor, ""),
		datedReview(2, 80, anchor, ""),
	}
	got := timeStats(reviews, anchor)
	if got.SpanDays != 81 {
		t.Errorf("SpanDays = %d, want 81", got.SpanDays)
	}
	if got.Last7Days != 2 {
		t.Errorf("Last7Days = %d, want 2", got.Last7Days)
	}
	if got.Last30Days != 3 {
		t.Errorf("Last30Days = %d, want 3", got.Last30Days)
	}
	if got.Last90Days != 4 {
		t.Errorf("Last90Days = %d, want 4", got.Last90Days)
	}
}

func TestKeywordTrendsDelta(t *testing.T) {
	anchor := day("2026-08-30")
	reviews := []model.Review{
		datedReview(1, 5, anchor, "crash on open"),
		datedReview(1, 10, anchor, "another crash"),
		datedReview(1, 45, anchor, "crash last month"),
		datedReview(5, 3, anchor, "great app"),
	}
	got := keywordTrends(reviews, anchor)

	var crashTrend *analysis.KeywordTrend
	for i := range got.Negative {
		if got.Negative[i].Keyword == "crash" {
			crashTrend = &got.Negative[i]
		}
	}
	if crashTrend == nil {
		t.Fatal("crash missing from negative keyword trends")
	}
	if crashTrend.RecentCount != 2 || crashTrend.Delta != 1 {
		t.Errorf("crash trend = %+v, want recent 2 delta 1", *crashTrend)
	}

	foundGreat := false
	for _, kt := range got.Positive {
		if kt.Keyword == "great" {
			foundGreat = true
		}
	}
	if !foundGreat {
		t.Error("great missing from positive keyword trends")
	}
}
