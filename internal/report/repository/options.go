package repository

import "time"

type CreateReportOptions struct {
	ID         string
	AppID      string
	Regions    string // comma-joined, sorted
	Title      string
	ParamsHash string
}

type FindByParamsHashOptions struct {
	ParamsHash string
	Status     string
}

type UpdateCompletedOptions struct {
	ReportID         string
	FileURL          string
	FileSizeBytes    int64
	FileFormat       string
	ReviewsAnalyzed  int
	SectionsCount    int
	GenerationTimeMs int64
	CompletedAt      time.Time
}

type UpdateFailedOptions struct {
	ReportID     string
	ErrorMessage string
}

type ListReportsOptions struct {
	AppID  string
	Status string
	Limit  int
	Offset int
}
