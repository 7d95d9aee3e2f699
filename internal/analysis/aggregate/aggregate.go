// Package aggregate holds the pure aggregation functions over a fixed
// review set. No I/O; shared by the analysis and competitor pipelines.
package aggregate

import (
	"math"
	"sort"
	"strings"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/model"
	"review-insight-srv/pkg/version"
)

// Round2 rounds to 2 decimals, the precision used for every reported
// rating.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// MeanRating is the rounded mean over the set, 0 for an empty set.
func MeanRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return Round2(float64(sum) / float64(len(reviews)))
}

// BasicStats computes count, mean rating and the 1..5 histogram.
func BasicStats(reviews []model.Review) analysis.BasicStats {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			dist[r.Rating]++
		}
	}
	return analysis.BasicStats{
		TotalReviews:       len(reviews),
		AverageRating:      MeanRating(reviews),
		RatingDistribution: dist,
	}
}

// TrendData groups reviews by UTC calendar day, ascending. Returns the
// number of reviews dropped for missing dates so callers can log it.
func TrendData(reviews []model.Review) ([]analysis.TrendPoint, int) {
	type acc struct {
		sum, count int
	}
	days := make(map[string]*acc)
	dropped := 0
	for _, r := range reviews {
		if r.Date.IsZero() {
			dropped++
			continue
		}
		day := r.Date.UTC().Format("2006-01-02")
		a := days[day]
		if a == nil {
			a = &acc{}
			days[day] = a
		}
		a.sum += r.Rating
		a.count++
	}

	points := make([]analysis.TrendPoint, 0, len(days))
	for day, a := range days {
		points = append(points, analysis.TrendPoint{
			Date:          day,
			AverageRating: Round2(float64(a.sum) / float64(a.count)),
			Count:         a.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, dropped
}

// sentimentByRating is the threshold breakdown used inside version and
// region buckets.
func sentimentByRating(reviews []model.Review) (pos, neg, neu int) {
	for _, r := range reviews {
		switch {
		case r.Rating >= 4:
			pos++
		case r.Rating <= 2:
			neg++
		default:
			neu++
		}
	}
	return pos, neg, neu
}

// VersionAnalysis groups by version string, sorted ascending by semantic
// version order.
func VersionAnalysis(reviews []model.Review) []analysis.VersionStats {
	groups := make(map[string][]model.Review)
	for _, r := range reviews {
		groups[r.Version] = append(groups[r.Version], r)
	}

	stats := make([]analysis.VersionStats, 0, len(groups))
	for v, group := range groups {
		pos, neg, neu := sentimentByRating(group)
		stats = append(stats, analysis.VersionStats{
			Version:       v,
			Count:         len(group),
			AverageRating: MeanRating(group),
			Positive:      pos,
			Negative:      neg,
			Neutral:       neu,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return version.Compare(stats[i].Version, stats[j].Version) < 0
	})
	return stats
}

// RegionalAnalysis groups by region, sorted descending by review count.
func RegionalAnalysis(reviews []model.Review) []analysis.RegionStats {
	groups := make(map[string][]model.Review)
	for _, r := range reviews {
		region := strings.ToUpper(r.Region)
		groups[region] = append(groups[region], r)
	}

	stats := make([]analysis.RegionStats, 0, len(groups))
	for region, group := range groups {
		pos, neg, neu := sentimentByRating(group)
		stats = append(stats, analysis.RegionStats{
			Region:        region,
			Count:         len(group),
			AverageRating: MeanRating(group),
			Positive:      pos,
			Negative:      neg,
			Neutral:       neu,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Region < stats[j].Region
	})
	return stats
}

// TopReviews picks the best and worst n reviews by rating.
func TopReviews(reviews []model.Review, n int) analysis.TopReviews {
	var positive, negative []model.Review
	for _, r := range reviews {
		if r.Rating >= 4 {
			positive = append(positive, r)
		} else if r.Rating <= 2 {
			negative = append(negative, r)
		}
	}

	sort.SliceStable(positive, func(i, j int) bool { return positive[i].Rating > positive[j].Rating })
	sort.SliceStable(negative, func(i, j int) bool { return negative[i].Rating < negative[j].Rating })

	if len(positive) > n {
		positive = positive[:n]
	}
	if len(negative) > n {
		negative = negative[:n]
	}
	return analysis.TopReviews{Positive: positive, Negative: negative}
}
