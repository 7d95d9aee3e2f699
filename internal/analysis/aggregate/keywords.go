package aggregate

import (
	"sort"
	"strings"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/model"
)

// keywordVocabulary is the fixed term set scanned across titles and
// contents, spanning bugs, praise, performance, UI, pricing and support.
var keywordVocabulary = []string{
	// bugs and stability
	"crash", "bug", "error", "broken", "glitch", "freeze", "frozen", "fix",
	// praise
	"great", "love", "awesome", "amazing", "perfect", "excellent", "best", "helpful",
	// complaints
	"terrible", "awful", "worst", "useless", "annoying", "disappointing",
	// performance
	"slow", "lag", "fast", "battery", "loading", "performance", "memory",
	// UI
	"design", "interface", "ui", "layout", "confusing", "intuitive",
	// features and content
	"feature", "update", "sync", "notification", "offline", "content",
	// pricing and account
	"price", "expensive", "subscription", "refund", "free", "ads",
	// support
	"support", "login", "account",
}

// KeywordAnalysis counts reviews containing each vocabulary term
// (case-insensitive substring over title+content) and classifies the
// term's sentiment by mean rating among matches. Zero-match terms are
// excluded; result sorted by count descending.
func KeywordAnalysis(reviews []model.Review) []analysis.KeywordStats {
	texts := make([]string, len(reviews))
	for i, r := range reviews {
		texts[i] = strings.ToLower(r.Text())
	}

	var stats []analysis.KeywordStats
	for _, keyword := range keywordVocabulary {
		count := 0
		ratingSum := 0
		for i := range reviews {
			if strings.Contains(texts[i], keyword) {
				count++
				ratingSum += reviews[i].Rating
			}
		}
		if count == 0 {
			continue
		}

		mean := Round2(float64(ratingSum) / float64(count))
		stats = append(stats, analysis.KeywordStats{
			Keyword:       keyword,
			Count:         count,
			AverageRating: mean,
			Sentiment:     sentimentByMeanRating(mean),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats
}

// sentimentByMeanRating classifies a keyword's sentiment by the mean
// rating of its matching reviews.
func sentimentByMeanRating(mean float64) string {
	switch {
	case mean >= 4:
		return "positive"
	case mean <= 2:
		return "negative"
	default:
		return "neutral"
	}
}
