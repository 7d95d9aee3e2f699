package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/analysis/aggregate"
	"review-insight-srv/internal/analysis/repository"
	"review-insight-srv/internal/filter"
	"review-insight-srv/internal/model"
	"review-insight-srv/internal/sentiment"
	"review-insight-srv/internal/steps"
	"review-insight-srv/pkg/version"
)

// Analyze runs the full pipeline for one app. Aggregation, sentiment
// scoring and step synthesis run in parallel once the filtered set is
// fixed. The output is a pure derived view; re-running produces a new
// one.
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	input.AppID = strings.TrimSpace(input.AppID)
	if input.AppID == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrAppIDRequired
	}
	if len(input.Regions) == 0 {
		return analysis.AnalyzeOutput{}, analysis.ErrNoRegions
	}
	if input.MaxPages <= 0 {
		input.MaxPages = uc.cfg.MaxPages
	}

	if uc.repo != nil && !input.SkipCache {
		cached, err := uc.repo.GetAnalysis(ctx, input.AppID, input.Regions)
		if err == nil {
			cached.FromCache = true
			return cached, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: cache lookup failed, recomputing: %v", err)
		}
	}

	metadata, err := uc.fetchMetadata(ctx, input.AppID)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: fetch metadata: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	reviews := uc.fetchReviews(ctx, input.AppID, input.Regions, input.MaxPages)
	if input.MinVersion != "" {
		reviews = filterReviewsByVersion(reviews, input.MinVersion)
	}
	if len(reviews) == 0 {
		return analysis.AnalyzeOutput{}, analysis.ErrNoReviews
	}

	filterOut, err := uc.filter.FilterMany(ctx, filter.FilterInput{Reviews: reviews})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: filter reviews: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	// Never analyze an empty set while data exists: an empty informative
	// set means the aggregates run over the full input.
	selected := reviews
	if len(filterOut.Informative) > 0 {
		selected = make([]model.Review, len(filterOut.Informative))
		for i, cr := range filterOut.Informative {
			selected[i] = cr.Review
		}
	}

	output := analysis.AnalyzeOutput{
		AppID:    input.AppID,
		Regions:  input.Regions,
		Metadata: metadata,
		FilteredAnalysis: analysis.FilteredAnalysis{
			InformativeCount:    len(filterOut.Informative),
			NonInformativeCount: len(filterOut.NonInformative),
			UsedLLM:             filterOut.UsedLLM,
		},
		GeneratedAt: time.Now().UTC(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		output.BasicStats = aggregate.BasicStats(selected)
		trend, dropped := aggregate.TrendData(selected)
		if dropped > 0 {
			uc.l.Warnf(gctx, "analysis.usecase.Analyze: dropped %d reviews with invalid dates from trend data", dropped)
		}
		output.TrendData = trend
		output.VersionAnalysis = aggregate.VersionAnalysis(selected)
		output.RegionalAnalysis = aggregate.RegionalAnalysis(selected)
		output.KeywordAnalysis = aggregate.KeywordAnalysis(selected)
		output.TopReviews = aggregate.TopReviews(selected, uc.cfg.TopReviews)
		output.DynamicMetrics = aggregate.DynamicMetrics(selected, trend)
		return nil
	})
	g.Go(func() error {
		output.SentimentAnalysis = uc.sentiment.Score(gctx, sentiment.ScoreInput{Reviews: selected})
		return nil
	})
	g.Go(func() error {
		// Steps work off the unfiltered set, sampled by rating.
		appName := input.AppID
		if metadata != nil {
			appName = metadata.TrackName
		}
		stepsOut, err := uc.steps.Generate(gctx, steps.GenerateInput{
			AppName:    appName,
			Reviews:    reviews,
			MinVersion: input.MinVersion,
		})
		if err != nil {
			return err
		}
		output.ActionableSteps = stepsOut
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: pipeline stage failed: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	if uc.repo != nil {
		if err := uc.repo.SaveAnalysis(ctx, output); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: cache save failed: %v", err)
		}
	}

	return output, nil
}

// filterReviewsByVersion keeps reviews at or above the inclusive bound.
func filterReviewsByVersion(reviews []model.Review, minVersion string) []model.Review {
	var out []model.Review
	for _, r := range reviews {
		if version.AtLeast(r.Version, minVersion) {
			out = append(out, r)
		}
	}
	return out
}
