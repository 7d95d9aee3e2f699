package steps

import "review-insight-srv/internal/model"

// Defaults for the step synthesis policy.
const (
	DefaultMinVersion   = "0.0" // no filtering
	DefaultMaxPerBucket = 500
	DefaultMaxTokens    = 2000
	DefaultTemperature  = 0.3
)

// GenerateInput is the corpus to synthesize steps from. Steps work off
// the unfiltered review set, sampled by rating.
type GenerateInput struct {
	AppName    string
	Reviews    []model.Review
	MinVersion string // inclusive lower bound; empty means DefaultMinVersion
}

// StepInsights is the model's qualitative read on the corpus.
type StepInsights struct {
	KeyThemes         []string `json:"key_themes"`
	OverallAssessment string   `json:"overall_assessment"`
}

// GenerateOutput is always well-formed: Steps is non-empty even on the
// mock-fallback path, and Summary counts equal the actual per-priority
// counts of Steps.
type GenerateOutput struct {
	Steps    []model.ActionableStep `json:"steps"`
	Summary  model.StepSummary      `json:"summary"`
	Insights StepInsights           `json:"insights"`
	UsedMock bool                   `json:"used_mock"`
	Merged   bool                   `json:"merged"`
}
