package competitor

import "errors"

var (
	ErrAppIDRequired = errors.New("app id is required")
	ErrNoRegions     = errors.New("at least one region must be selected")
	ErrAppNotFound   = errors.New("app not found")
)
