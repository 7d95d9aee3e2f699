package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrReportNotCompleted = errors.New("report is not completed")
	ErrAppIDRequired      = errors.New("app id is required")
	ErrNoRegions          = errors.New("at least one region must be selected")
	ErrGenerationFailed   = errors.New("report generation failed")
	ErrDownloadURLFailed  = errors.New("failed to generate download URL")
)
