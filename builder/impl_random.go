// SPDX-License-Identifier: MIT
// Package: lvseg/builder
//
// impl_random.go — randomly scattered windows.
//
// Contract:
//   • Start offsets are uniform in [0, span); durations uniform in [0, maxDur].
//   • Windows are appended in time order unless WithShuffle is set; random
//     windows generally overlap, so the list is rarely disjoint.
//   • Offsets and durations have nanosecond resolution.

package builder

import (
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/lvseg/gps"
	"github.com/katalvlaran/lvseg/segments"
)

// Random returns a Constructor appending n windows whose starts fall in
// [start, start+span) and whose durations lie in [0, maxDur].
//
// Errors:
//   - ErrTooFewSegments — n < MinSegments.
//   - ErrBadDuration    — span ≤ 0, maxDur < 0 or maxDur is the largest Duration.
//   - ErrNeedRandSource — no RNG configured.
func Random(n int, start gps.Time, span, maxDur time.Duration) Constructor {
	return func(l *segments.List, cfg builderConfig) error {
		if err := validateCount(MethodRandom, n); err != nil {
			return err
		}
		if span <= 0 {
			return wrapf(MethodRandom, ErrBadDuration, "span must be > 0, got %v", span)
		}
		if err := validateNonNegative(MethodRandom, "maxDur", maxDur); err != nil {
			return err
		}
		if maxDur == math.MaxInt64 {
			// The draw is over [0, maxDur], which needs maxDur+1 to fit.
			return wrapf(MethodRandom, ErrBadDuration, "maxDur must be < %v", time.Duration(math.MaxInt64))
		}
		if cfg.rng == nil {
			return wrapf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		segs := make([]segments.Segment, n)
		for i := range segs {
			s := start.Add(time.Duration(cfg.rng.Int63n(int64(span))))
			d := time.Duration(cfg.rng.Int63n(int64(maxDur) + 1))
			segs[i] = segments.Segment{Start: s, End: s.Add(d)}
		}
		slices.SortFunc(segs, func(a, b segments.Segment) int { return a.Cmp(b) })

		return appendAll(MethodRandom, l, cfg, segs)
	}
}
