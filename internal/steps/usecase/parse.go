package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/steps"
	"review-insight-srv/pkg/jsonutil"
)

type llmStep struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	Category        string   `json:"category"`
	EstimatedImpact string   `json:"estimatedImpact"`
	AffectedUsers   int      `json:"affectedUsers"`
	Confidence      float64  `json:"confidence"`
	Tags            []string `json:"tags"`
	Timeframe       string   `json:"timeframe"`
}

type llmStepsResponse struct {
	Steps    []llmStep `json:"steps"`
	Insights struct {
		KeyThemes         []string `json:"keyThemes"`
		OverallAssessment string   `json:"overallAssessment"`
	} `json:"insights"`
}

// parseStepsResponse extracts the first balanced JSON object from the
// raw LLM text, validates and coerces every field, and recomputes the
// summary from the actual steps. The model's self-reported counts are
// never trusted.
func parseStepsResponse(raw string) (steps.GenerateOutput, error) {
	obj, err := jsonutil.ExtractObject(raw)
	if err != nil {
		return steps.GenerateOutput{}, err
	}

	var resp llmStepsResponse
	if err := json.Unmarshal([]byte(obj), &resp); err != nil {
		return steps.GenerateOutput{}, fmt.Errorf("unmarshal steps: %w", err)
	}
	if len(resp.Steps) == 0 {
		return steps.GenerateOutput{}, fmt.Errorf("response contains no steps")
	}

	out := steps.GenerateOutput{
		Insights: steps.StepInsights{
			KeyThemes:         resp.Insights.KeyThemes,
			OverallAssessment: resp.Insights.OverallAssessment,
		},
	}
	for _, s := range resp.Steps {
		if s.Title == "" {
			continue
		}
		out.Steps = append(out.Steps, coerceStep(s))
	}
	if len(out.Steps) == 0 {
		return steps.GenerateOutput{}, fmt.Errorf("no valid steps after coercion")
	}

	out.Summary = summarize(out.Steps)
	return out, nil
}

// coerceStep maps one raw step onto the model type with named defaults
// for every enum field.
func coerceStep(s llmStep) model.ActionableStep {
	id := s.ID
	if id == "" {
		id = uuid.NewString()
	}

	confidence := s.Confidence
	if confidence < 0 || confidence > 1 {
		confidence = 0.5
	}
	affected := s.AffectedUsers
	if affected < 0 {
		affected = 0
	}
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.ActionableStep{
		ID:              id,
		Title:           s.Title,
		Description:     s.Description,
		Priority:        coercePriority(s.Priority),
		Category:        coerceCategory(s.Category),
		EstimatedImpact: s.EstimatedImpact,
		AffectedUsers:   affected,
		Confidence:      confidence,
		Tags:            tags,
		Timeframe:       coerceTimeframe(s.Timeframe),
	}
}

func coercePriority(p string) string {
	switch p {
	case model.PriorityCritical, model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		return p
	}
	return model.PriorityMedium
}

func coerceCategory(c string) string {
	switch c {
	case model.StepCategoryBug, model.StepCategoryPerformance, model.StepCategoryFeature,
		model.StepCategoryUI, model.StepCategoryContent, model.StepCategoryOther:
		return c
	}
	return model.StepCategoryOther
}

func coerceTimeframe(t string) string {
	switch t {
	case model.TimeframeImmediate, model.TimeframeShortTerm, model.TimeframeLongTerm:
		return t
	}
	return model.TimeframeShortTerm
}

// summarize recomputes priority counts from the actual step list.
func summarize(list []model.ActionableStep) model.StepSummary {
	summary := model.StepSummary{TotalSteps: len(list)}
	for _, s := range list {
		switch s.Priority {
		case model.PriorityCritical:
			summary.CriticalCount++
		case model.PriorityHigh:
			summary.HighCount++
		case model.PriorityMedium:
			summary.MediumCount++
		case model.PriorityLow:
			summary.LowCount++
		}
	}
	return summary
}
