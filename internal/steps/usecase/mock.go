package usecase

import (
	"github.com/google/uuid"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/steps"
)

// mockOutput is the canned two-step fallback returned when the LLM path
// is unavailable. Guarantees the caller always receives a non-empty,
// well-formed result.
func mockOutput() steps.GenerateOutput {
	list := []model.ActionableStep{
		{
			ID:              uuid.NewString(),
			Title:           "Fix reported crashes",
			Description:     "Investigate and resolve the crash reports surfacing in recent negative reviews.",
			Priority:        model.PriorityCritical,
			Category:        model.StepCategoryBug,
			EstimatedImpact: "Reduces one-star reviews driven by stability issues",
			AffectedUsers:   0,
			Confidence:      0.5,
			Tags:            []string{"stability", "crash"},
			Timeframe:       model.TimeframeImmediate,
		},
		{
			ID:              uuid.NewString(),
			Title:           "Improve app performance",
			Description:     "Profile slow screens and reduce load times called out by reviewers.",
			Priority:        model.PriorityHigh,
			Category:        model.StepCategoryPerformance,
			EstimatedImpact: "Improves perceived responsiveness for all users",
			AffectedUsers:   0,
			Confidence:      0.5,
			Tags:            []string{"performance"},
			Timeframe:       model.TimeframeShortTerm,
		},
	}

	return steps.GenerateOutput{
		Steps:   list,
		Summary: summarize(list),
		Insights: steps.StepInsights{
			KeyThemes:         []string{"stability", "performance"},
			OverallAssessment: "Generated without model access; based on the most common review complaint patterns.",
		},
		UsedMock: true,
	}
}
