package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"review-insight-srv/internal/filter"
	"review-insight-srv/internal/model"
	"review-insight-srv/pkg/progress"
)

// FilterMany classifies every review as informative or not. It gates on
// config and the review ceiling, runs batched LLM classification with
// bounded concurrency, and falls back to heuristics when the LLM path
// yields nothing.
// Invariant: len(Informative) + len(NonInformative) == len(input.Reviews).
func (uc *implUseCase) FilterMany(ctx context.Context, input filter.FilterInput) (filter.FilterOutput, error) {
	if len(input.Reviews) == 0 {
		return filter.FilterOutput{}, filter.ErrNoReviews
	}

	// Cost/latency bound, not a correctness rule: past the ceiling the
	// heuristic path runs directly.
	if !uc.cfg.Enabled || uc.gemini == nil || len(input.Reviews) > uc.cfg.MaxReviews {
		uc.l.Infof(ctx, "filter.usecase.FilterMany: using heuristic path for %d reviews (llm_enabled=%v)",
			len(input.Reviews), uc.cfg.Enabled && uc.gemini != nil)
		return uc.filterHeuristic(input.Reviews), nil
	}

	verdicts := uc.classifyBatched(ctx, input.Reviews)

	output := filter.FilterOutput{UsedLLM: true}
	for i, r := range input.Reviews {
		cr := model.ClassifiedReview{Review: r, Verdict: verdicts[i]}
		if verdicts[i].IsInformative {
			output.Informative = append(output.Informative, cr)
		} else {
			output.NonInformative = append(output.NonInformative, cr)
		}
	}

	// Zero informative reviews out of a non-empty set means the LLM path
	// collapsed (e.g. total outage); the heuristic set is more useful
	// than an empty dashboard.
	if len(output.Informative) == 0 {
		uc.l.Warnf(ctx, "filter.usecase.FilterMany: LLM path returned zero informative reviews, falling back to heuristics")
		return uc.filterHeuristic(input.Reviews), nil
	}

	return output, nil
}

// filterHeuristic classifies the whole set with the deterministic
// pattern classifier.
func (uc *implUseCase) filterHeuristic(reviews []model.Review) filter.FilterOutput {
	output := filter.FilterOutput{UsedLLM: false}
	for _, r := range reviews {
		verdict := filter.ClassifyHeuristic(r.Title, r.Content)
		cr := model.ClassifiedReview{Review: r, Verdict: verdict}
		if verdict.IsInformative {
			output.Informative = append(output.Informative, cr)
		} else {
			output.NonInformative = append(output.NonInformative, cr)
		}
	}
	return output
}

// classifyBatched partitions reviews into batches and dispatches groups
// of at most MaxConcurrentBatches batches in parallel, pausing between
// groups to respect provider rate limits. Results land at the review's
// original index, so ordering is preserved.
func (uc *implUseCase) classifyBatched(ctx context.Context, reviews []model.Review) []model.FilterVerdict {
	verdicts := make([]model.FilterVerdict, len(reviews))

	type batch struct {
		start, end int
	}
	var batches []batch
	for start := 0; start < len(reviews); start += uc.cfg.BatchSize {
		end := start + uc.cfg.BatchSize
		if end > len(reviews) {
			end = len(reviews)
		}
		batches = append(batches, batch{start: start, end: end})
	}

	for gi := 0; gi < len(batches); gi += uc.cfg.MaxConcurrentBatches {
		ge := gi + uc.cfg.MaxConcurrentBatches
		if ge > len(batches) {
			ge = len(batches)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, b := range batches[gi:ge] {
			g.Go(func() error {
				for i := b.start; i < b.end; i++ {
					verdicts[i] = uc.classifyReview(gctx, reviews[i])
				}
				return nil
			})
		}
		// classifyReview never returns an error; it degrades per review.
		_ = g.Wait()

		uc.sink.Emit(progress.Event{
			Stage:      "filtering",
			Percentage: (ge * 100) / len(batches),
		})

		if ge < len(batches) {
			select {
			case <-ctx.Done():
				// Remaining reviews get the deterministic fallback below.
				for i := batches[ge].start; i < len(reviews); i++ {
					verdicts[i] = fallbackVerdict(reviews[i])
				}
				return verdicts
			case <-time.After(time.Duration(uc.cfg.RateLimitDelayMs) * time.Millisecond):
			}
		}
	}

	return verdicts
}

// classifyReview runs one review through the LLM with retry, degrading to
// a deterministic verdict when every attempt fails. The pipeline never
// blocks on a single bad review.
func (uc *implUseCase) classifyReview(ctx context.Context, r model.Review) model.FilterVerdict {
	var lastErr error
	for attempt := 1; attempt <= uc.cfg.RetryAttempts; attempt++ {
		verdict, err := uc.classifyOnce(ctx, r)
		if err == nil {
			return verdict
		}
		lastErr = err

		if !Retryable(err) {
			break
		}
		if attempt < uc.cfg.RetryAttempts {
			select {
			case <-ctx.Done():
				return fallbackVerdict(r)
			case <-time.After(time.Duration(uc.cfg.RetryDelayMs*attempt) * time.Millisecond):
			}
		}
	}

	uc.l.Warnf(ctx, "filter.usecase.classifyReview: review %s degraded to fallback verdict: %v", r.ID, lastErr)
	return fallbackVerdict(r)
}

// fallbackVerdict is the deterministic last resort: informative iff the
// combined text is longer than 20 characters.
func fallbackVerdict(r model.Review) model.FilterVerdict {
	informative := len(r.Title)+len(r.Content) > 20
	category := model.CategoryNonInformative
	if informative {
		category = model.CategoryGeneral
	}
	return model.FilterVerdict{
		IsInformative: informative,
		Confidence:    0.5,
		Reason:        "fallback: length-based classification after LLM failure",
		Category:      category,
	}
}
