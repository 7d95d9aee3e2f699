package usecase

import (
	"context"
	"strings"
	"time"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/model"
	"review-insight-srv/pkg/appstore"
)

// FetchReviews fetches and de-duplicates reviews for an app without
// running the pipeline.
func (uc *implUseCase) FetchReviews(ctx context.Context, input analysis.AnalyzeInput) ([]model.Review, error) {
	input.AppID = strings.TrimSpace(input.AppID)
	if input.AppID == "" {
		return nil, analysis.ErrAppIDRequired
	}
	if len(input.Regions) == 0 {
		return nil, analysis.ErrNoRegions
	}
	if input.MaxPages <= 0 {
		input.MaxPages = uc.cfg.MaxPages
	}

	reviews := uc.fetchReviews(ctx, input.AppID, input.Regions, input.MaxPages)
	if input.MinVersion != "" {
		reviews = filterReviewsByVersion(reviews, input.MinVersion)
	}
	if len(reviews) == 0 {
		return nil, analysis.ErrNoReviews
	}
	return reviews, nil
}

// fetchMetadata resolves the app's store record. A nil lookup result is
// a user-facing "app not found", distinct from connectivity failures.
func (uc *implUseCase) fetchMetadata(ctx context.Context, appID string) (*model.AppMetadata, error) {
	app, err := uc.appStore.Lookup(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, analysis.ErrAppNotFound
	}
	return &model.AppMetadata{
		TrackName:        app.TrackName,
		SellerName:       app.SellerName,
		PrimaryGenreName: app.PrimaryGenre,
		Version:          app.Version,
		AverageRating:    app.AverageRating,
		UserRatingCount:  app.UserRatingCount,
	}, nil
}

// fetchReviews walks regions sequentially with an inter-region pause to
// respect the upstream rate limit. A failed region is logged and
// skipped; duplicates across regions are dropped by review id.
func (uc *implUseCase) fetchReviews(ctx context.Context, appID string, regions []string, maxPages int) []model.Review {
	seen := make(map[string]bool)
	var reviews []model.Review

	for ri, region := range regions {
		for page := 1; page <= maxPages; page++ {
			entries, err := uc.appStore.FetchReviewPage(ctx, appID, region, page)
			if err != nil {
				uc.l.Warnf(ctx, "analysis.usecase.fetchReviews: region %s page %d failed, skipping region: %v", region, page, err)
				break
			}
			if len(entries) == 0 {
				break
			}
			for _, e := range entries {
				if seen[e.ID] {
					continue
				}
				seen[e.ID] = true
				reviews = append(reviews, toReview(e, region))
			}
		}

		if ri < len(regions)-1 {
			select {
			case <-ctx.Done():
				return reviews
			case <-time.After(time.Duration(uc.cfg.RegionDelayMs) * time.Millisecond):
			}
		}
	}

	return reviews
}

// toReview converts a raw feed entry. An unparseable date is kept as the
// zero time; the trend aggregation drops it with a warning.
func toReview(e appstore.ReviewEntry, region string) model.Review {
	date, err := time.Parse(time.RFC3339, e.Date)
	if err != nil {
		date = time.Time{}
	}
	return model.Review{
		ID:      e.ID,
		Region:  region,
		Title:   e.Title,
		Content: e.Content,
		Rating:  e.Rating,
		Version: e.Version,
		Date:    date,
		Author:  e.Author,
	}
}
