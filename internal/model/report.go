package model

import "time"

// Report represents a generated report record.
type Report struct {
	ID      string
	AppID   string
	Regions string // comma-joined, sorted

	// Report Configuration
	Title      string
	ParamsHash string

	// Status
	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Output
	FileURL       string
	FileSizeBytes int64
	FileFormat    string

	// Metrics
	ReviewsAnalyzed  int
	SectionsCount    int
	GenerationTimeMs int64

	// Timestamps
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
