package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"review-insight-srv/internal/model"
	"review-insight-srv/pkg/jsonutil"
)

const classifyPromptTmpl = `You are filtering App Store reviews for an analytics pipeline.
Decide whether the review below contains actionable information for the
app's developers (a bug report, a feature request, performance or UI
feedback, or any concrete detail). Generic praise or complaints with no
detail are not informative.

Review title: %q
Review content: %q
Rating: %d/5

Respond with a single JSON object, nothing else:
{"isInformative": true|false, "confidence": 0.0-1.0, "reason": "<short>", "category": "bug|feature|performance|ui|general|non-informative"}`

type llmVerdict struct {
	IsInformative bool    `json:"isInformative"`
	Confidence    float64 `json:"confidence"`
	Reason        string  `json:"reason"`
	Category      string  `json:"category"`
}

// classifyOnce runs a single classification attempt against the LLM.
func (uc *implUseCase) classifyOnce(ctx context.Context, r model.Review) (model.FilterVerdict, error) {
	prompt := fmt.Sprintf(classifyPromptTmpl, r.Title, r.Content, r.Rating)

	raw, err := uc.gemini.Generate(ctx, prompt)
	if err != nil {
		return model.FilterVerdict{}, err
	}

	obj, err := jsonutil.ExtractObject(raw)
	if err != nil {
		return model.FilterVerdict{}, fmt.Errorf("no JSON object in response: %w", err)
	}

	var v llmVerdict
	if err := json.Unmarshal([]byte(obj), &v); err != nil {
		return model.FilterVerdict{}, fmt.Errorf("unmarshal verdict: %w", err)
	}

	if v.Confidence < 0 || v.Confidence > 1 {
		v.Confidence = 0.5
	}
	if !validCategory(v.Category) {
		if v.IsInformative {
			v.Category = model.CategoryGeneral
		} else {
			v.Category = model.CategoryNonInformative
		}
	}

	return model.FilterVerdict{
		IsInformative: v.IsInformative,
		Confidence:    v.Confidence,
		Reason:        v.Reason,
		Category:      v.Category,
	}, nil
}

func validCategory(c string) bool {
	switch c {
	case model.CategoryBug, model.CategoryFeature, model.CategoryPerformance,
		model.CategoryUI, model.CategoryGeneral, model.CategoryNonInformative:
		return true
	}
	return false
}
