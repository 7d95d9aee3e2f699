package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"review-insight-srv/internal/analysis/aggregate"
	"review-insight-srv/internal/competitor"
	"review-insight-srv/internal/model"
	"review-insight-srv/pkg/appstore"
)

// Analyze discovers comparable apps, aggregates their reviews and
// computes the primary app's market position. A failed competitor is
// skipped, never aborting the analysis.
func (uc *implUseCase) Analyze(ctx context.Context, input competitor.AnalyzeInput) (competitor.AnalyzeOutput, error) {
	input.AppID = strings.TrimSpace(input.AppID)
	if input.AppID == "" {
		return competitor.AnalyzeOutput{}, competitor.ErrAppIDRequired
	}
	if len(input.Regions) == 0 {
		return competitor.AnalyzeOutput{}, competitor.ErrNoRegions
	}

	primary, err := uc.appStore.Lookup(ctx, input.AppID)
	if err != nil {
		uc.l.Errorf(ctx, "competitor.usecase.Analyze: lookup primary app: %v", err)
		return competitor.AnalyzeOutput{}, err
	}
	if primary == nil {
		return competitor.AnalyzeOutput{}, competitor.ErrAppNotFound
	}

	candidates := rank(uc.discover(ctx, primary, input.AppID, input.Regions), uc.cfg.MaxCompetitors)

	var competitors []competitor.Competitor
	for i, app := range candidates {
		c, err := uc.analyzeCompetitor(ctx, app, input.Regions[0])
		if err != nil {
			uc.l.Warnf(ctx, "competitor.usecase.Analyze: competitor %d skipped: %v", app.TrackID, err)
			continue
		}
		competitors = append(competitors, c)

		if i < len(candidates)-1 {
			select {
			case <-ctx.Done():
				return competitor.AnalyzeOutput{}, ctx.Err()
			case <-time.After(time.Duration(uc.cfg.RegionDelayMs) * time.Millisecond):
			}
		}
	}

	return competitor.AnalyzeOutput{
		AppID:       input.AppID,
		AppName:     primary.TrackName,
		Competitors: competitors,
		Market:      marketAnalysis(primary, competitors),
	}, nil
}

// analyzeCompetitor fetches one competitor's reviews and runs the
// aggregation subset used for the primary app.
func (uc *implUseCase) analyzeCompetitor(ctx context.Context, app appstore.App, region string) (competitor.Competitor, error) {
	appID := strconv.FormatInt(app.TrackID, 10)

	var reviews []model.Review
	for page := 1; page <= uc.cfg.MaxPages; page++ {
		entries, err := uc.appStore.FetchReviewPage(ctx, appID, region, page)
		if err != nil {
			return competitor.Competitor{}, err
		}
		if len(entries) == 0 {
			break
		}
		for _, e := range entries {
			date, err := time.Parse(time.RFC3339, e.Date)
			if err != nil {
				date = time.Time{}
			}
			reviews = append(reviews, model.Review{
				ID:      e.ID,
				Region:  region,
				Title:   e.Title,
				Content: e.Content,
				Rating:  e.Rating,
				Version: e.Version,
				Date:    date,
				Author:  e.Author,
			})
		}
	}

	trend, _ := aggregate.TrendData(reviews)
	pos, neg, neu := sentimentCounts(reviews)

	return competitor.Competitor{
		AppID:           appID,
		Name:            app.TrackName,
		Genre:           app.PrimaryGenre,
		AverageRating:   app.AverageRating,
		RatingCount:     app.UserRatingCount,
		RankScore:       aggregate.Round2(rankScore(app)),
		BasicStats:      aggregate.BasicStats(reviews),
		TrendData:       trend,
		VersionAnalysis: aggregate.VersionAnalysis(reviews),
		KeywordAnalysis: aggregate.KeywordAnalysis(reviews),
		Positive:        pos,
		Negative:        neg,
		Neutral:         neu,
	}, nil
}

// sentimentCounts is the rating-threshold breakdown used for competitor
// review sets, where no model call is warranted.
func sentimentCounts(reviews []model.Review) (pos, neg, neu int) {
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
