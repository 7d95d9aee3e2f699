package categorizer

import "errors"

var (
	ErrNoReviews = errors.New("at least one review is required")
)
