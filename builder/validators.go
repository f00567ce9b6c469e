// Package builder provides validation helpers enforcing constructor
// parameter contracts. Each returns a wrapped sentinel on violation.
package builder

import (
	"time"
)

// validateCount ensures n ≥ MinSegments.
func validateCount(method string, n int) error {
	if n < MinSegments {
		return wrapf(method, ErrTooFewSegments, "n must be ≥ %d, got %d", MinSegments, n)
	}

	return nil
}

// validateNonNegative ensures d ≥ 0.
func validateNonNegative(method, name string, d time.Duration) error {
	if d < 0 {
		return wrapf(method, ErrBadDuration, "%s must be ≥ 0, got %v", name, d)
	}

	return nil
}
