package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/steps"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/progress"
	"review-insight-srv/pkg/version"
)

// Generate synthesizes prioritized actionable steps. Stages: version
// filter, rating-bucket sampling, one synthesis LLM call, parse and
// validate, one merge LLM call. Any failure past the input validation
// short-circuits to the canned fallback, so callers always get a
// well-formed result.
func (uc *implUseCase) Generate(ctx context.Context, input steps.GenerateInput) (steps.GenerateOutput, error) {
	if len(input.Reviews) == 0 {
		return steps.GenerateOutput{}, steps.ErrNoReviews
	}

	minVersion := input.MinVersion
	if minVersion == "" {
		minVersion = steps.DefaultMinVersion
	}
	filtered := filterByVersion(input.Reviews, minVersion)
	if len(filtered) == 0 {
		filtered = input.Reviews
	}

	if uc.gemini == nil {
		uc.l.Infof(ctx, "steps.usecase.Generate: no LLM credential, returning mock steps")
		return mockOutput(), nil
	}

	uc.sink.Emit(progress.Event{Stage: "synthesis", Percentage: 10, Detail: "building prompt"})
	prompt := uc.buildPrompt(input.AppName, filtered)

	raw, err := uc.gemini.GenerateWithOptions(ctx, prompt, gemini.GenerateOptions{
		MaxTokens:   uc.cfg.MaxTokens,
		Temperature: uc.cfg.Temperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "steps.usecase.Generate: synthesis call failed, returning mock steps: %v", err)
		return mockOutput(), nil
	}

	uc.sink.Emit(progress.Event{Stage: "synthesis", Percentage: 60, Detail: "parsing response"})
	parsed, err := parseStepsResponse(raw)
	if err != nil {
		uc.l.Warnf(ctx, "steps.usecase.Generate: unparseable synthesis response, returning mock steps: %v (raw: %.200s)", err, raw)
		return mockOutput(), nil
	}

	merged, err := uc.mergeSteps(ctx, parsed)
	if err != nil {
		// Merging is a quality pass, not load-bearing.
		uc.l.Warnf(ctx, "steps.usecase.Generate: merge pass failed, keeping pre-merge steps: %v", err)
		uc.sink.Emit(progress.Event{Stage: "synthesis", Percentage: 100})
		return parsed, nil
	}

	uc.sink.Emit(progress.Event{Stage: "synthesis", Percentage: 100})
	merged.Merged = true
	return merged, nil
}

// mergeSteps sends the parsed result back with a merge-duplicates
// instruction and re-validates with the same parsing routine.
func (uc *implUseCase) mergeSteps(ctx context.Context, parsed steps.GenerateOutput) (steps.GenerateOutput, error) {
	payload, err := json.Marshal(parsed)
	if err != nil {
		return steps.GenerateOutput{}, err
	}

	prompt := fmt.Sprintf(mergePromptTmpl, payload)
	raw, err := uc.gemini.GenerateWithOptions(ctx, prompt, gemini.GenerateOptions{
		MaxTokens:   uc.cfg.MaxTokens,
		Temperature: uc.cfg.Temperature,
	})
	if err != nil {
		return steps.GenerateOutput{}, err
	}

	return parseStepsResponse(raw)
}

// filterByVersion keeps reviews at or above the minimum version.
// Idempotent under re-application with the same bound.
func filterByVersion(reviews []model.Review, minVersion string) []model.Review {
	var out []model.Review
	for _, r := range reviews {
		if version.AtLeast(r.Version, minVersion) {
			out = append(out, r)
		}
	}
	return out
}

// bucketByRating groups reviews by rating 1..5, sampling at most max per
// bucket. Sampling is a front slice, so callers get a stable subset.
func bucketByRating(reviews []model.Review, max int) map[int][]model.Review {
	buckets := make(map[int][]model.Review)
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		if len(buckets[r.Rating]) < max {
			buckets[r.Rating] = append(buckets[r.Rating], r)
		}
	}
	return buckets
}

func (uc *implUseCase) buildPrompt(appName string, reviews []model.Review) string {
	buckets := bucketByRating(reviews, uc.cfg.MaxPerBucket)

	var sb strings.Builder
	fmt.Fprintf(&sb, synthesisPromptHeader, appName, len(reviews))

	ratings := make([]int, 0, len(buckets))
	for rating := range buckets {
		ratings = append(ratings, rating)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ratings)))

	for _, rating := range ratings {
		fmt.Fprintf(&sb, "\n%d-star reviews (%d):\n", rating, len(buckets[rating]))
		for _, r := range buckets[rating] {
			fmt.Fprintf(&sb, "- %q\n", r.Text())
		}
	}

	sb.WriteString(synthesisPromptSchema)
	return sb.String()
}
