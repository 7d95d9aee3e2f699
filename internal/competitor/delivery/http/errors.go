package http

import (
	"errors"

	"review-insight-srv/internal/competitor"
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
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, competitor.ErrAppIDRequired):
		return errAppIDRequired
	case errors.Is(err, competitor.ErrNoRegions):
		return errNoRegions
	case errors.Is(err, competitor.ErrAppNotFound):
		return errAppNotFound
	default:
		panic(err)
	}
}
