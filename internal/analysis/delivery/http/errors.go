package http

import (
	"errors"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/categorizer"
	"review-insight-srv/internal/filter"
	pkgErrors "review-insight-srv/pkg/errors"
)

var (
	errAppIDRequired = pkgErrors.NewHTTPError(
		400, "App id is required",
	)
	errNoRegions = pkgErrors.NewHTTPError(
		400, "At least one region must be selected",
	)
	errAppNotFound = pkgErrors.NewHTTPError(
		404, "App not found",
	)
	errNoReviews = pkgErrors.NewHTTPError(
		404, "No reviews available for analysis",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrAppIDRequired):
		return errAppIDRequired
	case errors.Is(err, analysis.ErrNoRegions):
		return errNoRegions
	case errors.Is(err, analysis.ErrAppNotFound):
		return errAppNotFound
	case errors.Is(err, analysis.ErrNoReviews),
		errors.Is(err, filter.ErrNoReviews),
		errors.Is(err, categorizer.ErrNoReviews):
		return errNoReviews
	default:
		panic(err)
	}
}
