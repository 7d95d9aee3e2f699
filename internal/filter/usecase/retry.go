package usecase

import (
	"context"
	"errors"
	"strings"
)

// retryablePatterns are substrings of transient provider errors worth a
// second attempt. Anything else (auth failures, malformed prompts,
// unparseable responses) fails fast.
var retryablePatterns = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"connection reset",
	"connection refused",
	"broken pipe",
	"temporary failure",
	"too many requests",
	"rate limit",
	"429",
	"500",
	"502",
	"503",
	"504",
	"overloaded",
	"unavailable",
	"internal error",
	"eof",
}

// Retryable reports whether err looks transient. Pure predicate with no
// side effects, so retry policy stays testable.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, p := range retryablePatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
