package aggregate

import (
	"testing"
	"time"

	"review-insight-srv/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBasicStatsHistogram(t *testing.T) {
	reviews := []model.Review{
		{Rating: 1}, {Rating: 1}, {Rating: 3}, {Rating: 5}, {Rating: 5},
	}
	got := BasicStats(reviews)

	if got.TotalReviews != 5 {
		t.Errorf("TotalReviews = %d, want 5", got.TotalReviews)
	}
	if got.AverageRating != 3.0 {
		t.Errorf("AverageRating = %v, want 3.0", got.AverageRating)
	}
	wantDist := map[int]int{1: 2, 2: 0, 3: 1, 4: 0, 5: 2}
	for rating, want := range wantDist {
		if got.RatingDistribution[rating] != want {
			t.Errorf("distribution[%d] = %d, want %d", rating, got.RatingDistribution[rating], want)
		}
	}
}

func TestTrendDataGroupsByDay(t *testing.T) {
	reviews := []model.Review{
		{Rating: 5, Date: day("2026-08-02")},
		{Rating: 3, Date: day("2026-08-02")},
		{Rating: 1, Date: day("2026-08-01")},
		{Rating: 2}, // zero date, dropped
	}

	got, dropped := TrendData(reviews)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if len(got) != 2 {
		t.Fatalf("points = %d, want 2", len(got))
	}
	if got[0].Date != "2026-08-01" || got[1].Date != "2026-08-02" {
		t.Errorf("dates = [%s %s], want ascending order", got[0].Date, got[1].Date)
	}
	if got[1].AverageRating != 4.0 || got[1].Count != 2 {
		t.Errorf("2026-08-02 point = %+v, want avg 4.0 count 2", got[1])
	}
}

func TestVersionAnalysisSortedByVersion(t *testing.T) {
	reviews := []model.Review{
		{Rating: 5, Version: "2.0"},
		{Rating: 1, Version: "1.9.9"},
		{Rating: 3, Version: "1.10"},
	}
	got := VersionAnalysis(reviews)
	if len(got) != 3 {
		t.Fatalf("groups = %d, want 3", len(got))
	}
	want := []string{"1.9.9", "1.10", "2.0"}
	for i, v := range want {
		if got[i].Version != v {
			t.Errorf("position %d = %q, want %q", i, got[i].Version, v)
		}
	}
}

func TestRegionalAnalysisSortedByCount(t *testing.T) {
	reviews := []model.Review{
		{Rating: 5, Region: "us"},
		{Rating: 4, Region: "us"},
		{Rating: 1, Region: "gb"},
	}
	got := RegionalAnalysis(reviews)
	if len(got) != 2 {
		t.Fatalf("groups = %d, want 2", len(got))
	}
	if got[0].Region != "US" || got[0].Count != 2 {
		t.Errorf("first = %+v, want US with count 2", got[0])
	}
	if got[0].Positive != 2 {
		t.Errorf("US positive = %d, want 2", got[0].Positive)
	}
	if got[1].Negative != 1 {
		t.Errorf("GB negative = %d, want 1", got[1].Negative)
	}
}

func TestKeywordAnalysisScenario(t *testing.T) {
	reviews := []model.Review{
		{Rating: 1, Content: "it keeps crashing, total crash fest"},
		{Rating: 5, Content: "great app, use it daily"},
	}
	got := KeywordAnalysis(reviews)

	byKeyword := make(map[string]int)
	sentiments := make(map[string]string)
	for _, s := range got {
		byKeyword[s.Keyword] = s.Count
		sentiments[s.Keyword] = s.Sentiment
	}

	if byKeyword["crash"] != 1 || sentiments["crash"] != "negative" {
		t.Errorf("crash = count %d sentiment %q, want 1/negative", byKeyword["crash"], sentiments["crash"])
	}
	if byKeyword["great"] != 1 || sentiments["great"] != "positive" {
		t.Errorf("great = count %d sentiment %q, want 1/positive", byKeyword["great"], sentiments["great"])
	}
	for _, s := range got {
		if s.Count == 0 {
			t.Errorf("zero-match keyword %q must be excluded", s.Keyword)
		}
	}
}

func TestTopReviews(t *testing.T) {
	reviews := []model.Review{
		{ID: "a", Rating: 5}, {ID: "b", Rating: 4}, {ID: "c", Rating: 5},
		{ID: "d", Rating: 1}, {ID: "e", Rating: 2}, {ID: "f", Rating: 3},
	}
	got := TopReviews(reviews, 2)
	if len(got.Positive) != 2 || got.Positive[0].Rating != 5 {
		t.Errorf("positive = %v, want 2 entries led by a 5-star", got.Positive)
	}
	if len(got.Negative) != 2 || got.Negative[0].Rating != 1 {
		t.Errorf("negative = %v, want 2 entries led by a 1-star", got.Negative)
	}
}
