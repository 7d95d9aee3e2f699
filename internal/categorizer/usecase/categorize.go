package usecase

import (
	"context"
	"strings"
	"time"

	"review-insight-srv/internal/categorizer"
	"review-insight-srv/internal/filter"
	"review-insight-srv/internal/model"
)

// Categorize assigns an issue category to each eligible negative review.
// Eligibility: rating at most 3, preferring reviews that pass the quality
// sub-filter. Batches run sequentially; a failed batch is recorded and
// skipped, never aborting the run.
func (uc *implUseCase) Categorize(ctx context.Context, input categorizer.CategorizeInput) (categorizer.CategorizeOutput, error) {
	if len(input.Reviews) == 0 {
		return categorizer.CategorizeOutput{}, categorizer.ErrNoReviews
	}

	started := time.Now()

	negative := negativeReviews(input.Reviews)
	if len(negative) == 0 {
		return categorizer.CategorizeOutput{
			ProcessingTimeMs: time.Since(started).Milliseconds(),
		}, nil
	}

	eligible := qualityFilter(negative)
	if len(eligible) == 0 {
		// Better to send weak signal than nothing at all.
		eligible = negative
	}

	if !uc.cfg.Enabled || uc.gemini == nil {
		out := uc.categorizeWithKeywords(eligible)
		out.ProcessingTimeMs = time.Since(started).Milliseconds()
		return out, nil
	}

	var (
		results   []categorizer.CategoryResult
		batchErrs []string
	)
	for start := 0; start < len(eligible); start += uc.cfg.BatchSize {
		end := start + uc.cfg.BatchSize
		if end > len(eligible) {
			end = len(eligible)
		}
		batch := eligible[start:end]

		batchResults, err := uc.categorizeBatch(ctx, batch)
		if err != nil {
			uc.l.Warnf(ctx, "categorizer.usecase.Categorize: batch %d-%d failed: %v", start, end, err)
			batchErrs = append(batchErrs, err.Error())
			continue
		}
		results = append(results, batchResults...)
	}

	// Every batch failed: the LLM path is down, keyword scoring takes over.
	if len(results) == 0 {
		uc.l.Warnf(ctx, "categorizer.usecase.Categorize: all %d batches failed, falling back to keyword categorization", (len(eligible)+uc.cfg.BatchSize-1)/uc.cfg.BatchSize)
		out := uc.categorizeWithKeywords(eligible)
		out.Errors = batchErrs
		out.ProcessingTimeMs = time.Since(started).Milliseconds()
		return out, nil
	}

	return categorizer.CategorizeOutput{
		Categories:       results,
		ProcessingTimeMs: time.Since(started).Milliseconds(),
		Errors:           batchErrs,
		UsedLLM:          true,
	}, nil
}

func (uc *implUseCase) categorizeWithKeywords(reviews []model.Review) categorizer.CategorizeOutput {
	out := categorizer.CategorizeOutput{UsedLLM: false}
	for _, r := range reviews {
		category, confidence := filter.CategorizeWithKeywords(r.Text())
		out.Categories = append(out.Categories, categorizer.CategoryResult{
			ReviewID:   r.ID,
			Category:   category,
			Confidence: confidence,
			Reasoning:  "keyword match",
		})
	}
	return out
}

func negativeReviews(reviews []model.Review) []model.Review {
	var out []model.Review
	for _, r := range reviews {
		if r.Rating <= categorizer.MaxEligibleRating {
			out = append(out, r)
		}
	}
	return out
}

// qualityFilter keeps reviews long enough to carry signal: combined text
// of at least MinQualityChars characters and MinQualityTokens whitespace
// tokens.
func qualityFilter(reviews []model.Review) []model.Review {
	var out []model.Review
	for _, r := range reviews {
		text := r.Text()
		if len(text) >= categorizer.MinQualityChars && len(strings.Fields(text)) >= categorizer.MinQualityTokens {
			out = append(out, r)
		}
	}
	return out
}
