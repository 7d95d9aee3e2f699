package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/sentiment"
)

// Score maps reviews to positive/negative/neutral counts. Batches of
// DefaultBatchSize run sequentially with a short pause between them; a
// failed batch defaults its items to neutral. When the model is
// unavailable the rating-threshold rule takes over.
// Invariant: Positive + Negative + Neutral == Total.
func (uc *implUseCase) Score(ctx context.Context, input sentiment.ScoreInput) sentiment.ScoreOutput {
	total := len(input.Reviews)
	if total == 0 {
		return sentiment.ScoreOutput{}
	}

	if !uc.cfg.Enabled || uc.model == nil {
		return uc.scoreByRating(input.Reviews)
	}

	labels := make([]string, 0, total)
	anySuccess := false
	for start := 0; start < total; start += uc.cfg.BatchSize {
		end := start + uc.cfg.BatchSize
		if end > total {
			end = total
		}
		batch := input.Reviews[start:end]

		texts := make([]string, len(batch))
		for i, r := range batch {
			texts[i] = r.Text()
		}

		results, err := uc.model.Classify(ctx, texts)
		if err != nil || len(results) != len(batch) {
			uc.l.Warnf(ctx, "sentiment.usecase.Score: batch %d-%d defaulted to neutral: %v", start, end, err)
			for range batch {
				labels = append(labels, sentiment.LabelNeutral)
			}
		} else {
			anySuccess = true
			for _, res := range results {
				labels = append(labels, normalizeLabel(res.Label))
			}
		}

		if end < total {
			select {
			case <-ctx.Done():
				// Remaining reviews score by rating threshold.
				for _, r := range input.Reviews[end:] {
					labels = append(labels, ratingLabel(r.Rating))
				}
				return countsFromLabels(labels, total, anySuccess)
			case <-time.After(time.Duration(uc.cfg.BatchDelayMs) * time.Millisecond):
			}
		}
	}

	if !anySuccess {
		uc.l.Warnf(ctx, "sentiment.usecase.Score: model unavailable for all batches, using rating thresholds")
		return uc.scoreByRating(input.Reviews)
	}

	return countsFromLabels(labels, total, true)
}

// countsFromLabels converts the label mix to integer counts against the
// true total. Neutral absorbs rounding so the counts always sum exactly.
func countsFromLabels(labels []string, total int, usedModel bool) sentiment.ScoreOutput {
	var pos, neg int
	for _, l := range labels {
		switch l {
		case sentiment.LabelPositive:
			pos++
		case sentiment.LabelNegative:
			neg++
		}
	}

	positive := int(math.Round(float64(pos) / float64(len(labels)) * float64(total)))
	negative := int(math.Round(float64(neg) / float64(len(labels)) * float64(total)))
	if positive+negative > total {
		negative = total - positive
	}

	return sentiment.ScoreOutput{
		Positive:  positive,
		Negative:  negative,
		Neutral:   total - positive - negative,
		Total:     total,
		UsedModel: usedModel,
	}
}

// scoreByRating is the exact fallback: rating>=4 positive, <=2 negative,
// ==3 neutral.
func (uc *implUseCase) scoreByRating(reviews []model.Review) sentiment.ScoreOutput {
	out := sentiment.ScoreOutput{Total: len(reviews)}
	for _, r := range reviews {
		switch ratingLabel(r.Rating) {
		case sentiment.LabelPositive:
			out.Positive++
		case sentiment.LabelNegative:
			out.Negative++
		default:
			out.Neutral++
		}
	}
	return out
}

func ratingLabel(rating int) string {
	switch {
	case rating >= sentiment.PositiveRatingThreshold:
		return sentiment.LabelPositive
	case rating <= sentiment.NegativeRatingThreshold:
		return sentiment.LabelNegative
	default:
		return sentiment.LabelNeutral
	}
}

// normalizeLabel maps raw model labels to the three normalized classes.
// Handles both worded labels and the LABEL_0/1/2 index scheme.
func normalizeLabel(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "POSITIVE", "POS", "LABEL_2":
		return sentiment.LabelPositive
	case "NEGATIVE", "NEG", "LABEL_0":
		return sentiment.LabelNegative
	default:
		return sentiment.LabelNeutral
	}
}
