package usecase

import (
	"fmt"

	"review-insight-srv/internal/analysis/aggregate"
	"review-insight-srv/internal/competitor"
	"review-insight-srv/pkg/appstore"
)

// marketAnalysis computes market-level aggregates over the primary app
// and its competitors: mean rating, leader, the primary app's position
// band, rating-count share, and textual pairwise comparisons.
func marketAnalysis(primary *appstore.App, competitors []competitor.Competitor) competitor.MarketAnalysis {
	ratingSum := primary.AverageRating
	countPool := primary.UserRatingCount
	leader := primary.TrackName
	leaderRating := primary.AverageRating

	for _, c := range competitors {
		ratingSum += c.AverageRating
		countPool += c.RatingCount
		if c.AverageRating > leaderRating {
			leader = c.Name
			leaderRating = c.AverageRating
		}
	}
	marketMean := ratingSum / float64(len(competitors)+1)

	share := 0.0
	if countPool > 0 {
		share = float64(primary.UserRatingCount) / float64(countPool)
	}

	market := competitor.MarketAnalysis{
		MarketAverageRating: aggregate.Round2(marketMean),
		Leader:              leader,
		Position:            position(primary.AverageRating, marketMean, leader == primary.TrackName),
		MarketShare:         aggregate.Round2(share),
	}
	fillComparisons(&market, primary, competitors)
	return market
}

// position classifies by fixed 0.5-star bands relative to the market
// mean.
func position(rating, marketMean float64, isLeader bool) string {
	delta := rating - marketMean
	switch {
	case isLeader:
		return competitor.PositionLeader
	case delta >= 0:
		return competitor.PositionChallenger
	case delta >= -0.5:
		return competitor.PositionFollower
	default:
		return competitor.PositionNiche
	}
}

// fillComparisons derives the SWOT-style text from simple pairwise
// rating and review-count comparisons.
func fillComparisons(market *competitor.MarketAnalysis, primary *appstore.App, competitors []competitor.Competitor) {
	for _, c := range competitors {
		switch {
		case primary.AverageRating > c.AverageRating+0.3:
			market.Strengths = append(market.Strengths,
				fmt.Sprintf("Rated %.1f stars above %s", primary.AverageRating-c.AverageRating, c.Name))
		case c.AverageRating > primary.AverageRating+0.3:
			market.Weaknesses = append(market.Weaknesses,
				fmt.Sprintf("%s is rated %.1f stars higher", c.Name, c.AverageRating-primary.AverageRating))
			market.Threats = append(market.Threats,
				fmt.Sprintf("%s may attract users dissatisfied with lower-rated alternatives", c.Name))
		}

		if primary.UserRatingCount < c.RatingCount/2 {
			market.Opportunities = append(market.Opportunities,
				fmt.Sprintf("%s has a much larger review base; growing visibility could close the gap", c.Name))
		} else if primary.UserRatingCount > c.RatingCount*2 {
			market.Strengths = append(market.Strengths,
				fmt.Sprintf("Much larger review base than %s", c.Name))
		}
	}

	if len(market.Weaknesses) > 0 {
		market.Recommendations = append(market.Recommendations,
			"Close the rating gap with higher-rated competitors by addressing the top negative review themes")
	}
	if len(market.Opportunities) > 0 {
		market.Recommendations = append(market.Recommendations,
			"Invest in user acquisition to grow the review base relative to larger competitors")
	}
	if len(market.Recommendations) == 0 {
		market.Recommendations = append(market.Recommendations,
			"Maintain the current rating advantage and monitor competitor releases")
	}
}
