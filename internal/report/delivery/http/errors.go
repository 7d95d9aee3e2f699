package http

import (
	"errors"

	"review-insight-srv/internal/report"
	pkgErrors "review-insight-srv/pkg/errors"
)

var (
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Report not found")
	errReportNotCompleted = pkgErrors.NewHTTPError(400, "Report is not completed yet")
	errAppIDRequired      = pkgErrors.NewHTTPError(400, "App id is required")
	errNoRegions          = pkgErrors.NewHTTPError(400, "At least one region must be selected")
	errGenerationFailed   = pkgErrors.NewHTTPError(500, "Report generation failed")
	errDownloadURLFailed  = pkgErrors.NewHTTPError(500, "Failed to generate download URL")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrReportNotCompleted):
		return errReportNotCompleted
	case errors.Is(err, report.ErrAppIDRequired):
		return errAppIDRequired
	case errors.Is(err, report.ErrNoRegions):
		return errNoRegions
	case errors.Is(err, report.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		panic(err)
	}
}
