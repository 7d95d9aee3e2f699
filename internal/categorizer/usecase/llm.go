package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"review-insight-srv/internal/categorizer"
	"review-insight-srv/internal/model"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/jsonutil"
)

const categorizePromptHeader = `You are categorizing negative App Store reviews into issue categories.
Valid categories: crashes_errors, feature_requests, performance, ui_ux, bugs_issues, other.

For each review below, pick exactly one category. Respond with a JSON
array containing exactly one object per review, nothing else:
[{"reviewId": "<id>", "category": "<category>", "confidence": 0.0-1.0, "reasoning": "<short>"}]

Reviews:
`

type llmCategory struct {
	ReviewID   string   `json:"reviewId"`
	Category   string   `json:"category"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// categorizeBatch sends one batch of reviews in a single LLM call and
// validates each returned entry individually. An array length mismatch
// is logged, not fatal.
func (uc *implUseCase) categorizeBatch(ctx context.Context, batch []model.Review) ([]categorizer.CategoryResult, error) {
	var sb strings.Builder
	sb.WriteString(categorizePromptHeader)
	for _, r := range batch {
		fmt.Fprintf(&sb, "- id: %s, rating: %d, text: %q\n", r.ID, r.Rating, r.Text())
	}

	raw, err := uc.gemini.GenerateWithOptions(ctx, sb.String(), gemini.GenerateOptions{
		MaxTokens:   uc.cfg.MaxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	arr, err := jsonutil.ExtractArray(raw)
	if err != nil {
		return nil, fmt.Errorf("no JSON array in response: %w", err)
	}

	var entries []llmCategory
	if err := json.Unmarshal([]byte(arr), &entries); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}

	if len(entries) != len(batch) {
		uc.l.Warnf(ctx, "categorizer.usecase.categorizeBatch: got %d entries for %d reviews", len(entries), len(batch))
	}

	ids := make(map[string]bool, len(batch))
	for _, r := range batch {
		ids[r.ID] = true
	}

	var results []categorizer.CategoryResult
	for _, e := range entries {
		if e.ReviewID == "" || !ids[e.ReviewID] {
			uc.l.Warnf(ctx, "categorizer.usecase.categorizeBatch: dropping entry with unknown review id %q", e.ReviewID)
			continue
		}
		if !model.ValidIssueCategory(e.Category) {
			uc.l.Warnf(ctx, "categorizer.usecase.categorizeBatch: dropping entry %s with invalid category %q", e.ReviewID, e.Category)
			continue
		}
		if e.Confidence == nil || *e.Confidence < 0 || *e.Confidence > 1 {
			uc.l.Warnf(ctx, "categorizer.usecase.categorizeBatch: dropping entry %s with invalid confidence", e.ReviewID)
			continue
		}
		results = append(results, categorizer.CategoryResult{
			ReviewID:   e.ReviewID,
			Category:   e.Category,
			Confidence: *e.Confidence,
			Reasoning:  e.Reasoning,
		})
	}

	return results, nil
}
