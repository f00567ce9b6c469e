// SPDX-License-Identifier: MIT
// Package: lvseg/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with wrapf, keeping %w.
//   • Constructors never panic; validation panics are confined to WithX option
//     constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewSegments indicates a segment count below the allowed minimum.
var ErrTooFewSegments = errors.New("builder: segment count too small")

// ErrBadDuration indicates a negative duration, a non-positive span, or a gap
// so negative that window starts would run backwards.
var ErrBadDuration = errors.New("builder: invalid duration")

// ErrNeedRandSource indicates that a stochastic constructor or WithShuffle
// needs an RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that building the list failed after validation,
// e.g. a nil Constructor or a rejected Append.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf prefixes err with the constructor name and a formatted message while
// keeping err matchable with errors.Is.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
