package model

// Actionable step priorities.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Actionable step categories.
const (
	StepCategoryBug         = "bug"
	StepCategoryPerformance = "performance"
	StepCategoryFeature     = "feature"
	StepCategoryUI          = "ui"
	StepCategoryContent     = "content"
	StepCategoryOther       = "other"
)

// Actionable step timeframes.
const (
	TimeframeImmediate = "immediate"
	TimeframeShortTerm = "short-term"
	TimeframeLongTerm  = "long-term"
)

// ActionableStep is one synthesized, prioritized remediation
// recommendation derived from aggregate review feedback. Held in memory
// for the duration of one analysis request.
type ActionableStep struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	Category        string   `json:"category"`
	EstimatedImpact string   `json:"estimated_impact"`
	AffectedUsers   int      `json:"affected_users"`
	Confidence      float64  `json:"confidence"` // 0..1
	Tags            []string `json:"tags"`
	Timeframe       string   `json:"timeframe"`
}

// StepSummary counts steps per priority. Always recomputed from the
// actual step list, never trusted from the model.
type StepSummary struct {
	TotalSteps    int `json:"total_steps"`
	CriticalCount int `json:"critical_count"`
	HighCount     int `json:"high_count"`
	MediumCount   int `json:"medium_count"`
	LowCount      int `json:"low_count"`
}
