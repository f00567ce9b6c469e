// SPDX-License-Identifier: MIT
// Package: lvseg/builder
//
// impl_regular.go — evenly spaced windows, the shape of a science run with
// regular dropouts.
//
// Contract:
//   • Window i covers [start + i·(duration+gap), … + duration).
//   • gap > 0 → disjoint list; gap == 0 → touching; -duration ≤ gap < 0 → overlapping.
//   • O(n) time and memory.

package builder

import (
	"time"

	"github.com/katalvlaran/lvseg/gps"
	"github.com/katalvlaran/lvseg/segments"
)

// Regular returns a Constructor appending n windows of the given duration,
// each starting duration+gap after the previous one.
//
// Errors:
//   - ErrTooFewSegments — n < MinSegments.
//   - ErrBadDuration    — duration < 0 or duration+gap < 0.
//   - ErrNeedRandSource — WithShuffle without an RNG.
func Regular(n int, start gps.Time, duration, gap time.Duration) Constructor {
	return func(l *segments.List, cfg builderConfig) error {
		if err := validateCount(MethodRegular, n); err != nil {
			return err
		}
		if err := validateNonNegative(MethodRegular, "duration", duration); err != nil {
			return err
		}
		step := duration + gap
		if step < 0 {
			return wrapf(MethodRegular, ErrBadDuration, "duration+gap must be ≥ 0, got %v", step)
		}

		segs := make([]segments.Segment, n)
		at := start
		for i := range segs {
			segs[i] = segments.Segment{Start: at, End: at.Add(duration)}
			at = at.Add(step)
		}

		return appendAll(MethodRegular, l, cfg, segs)
	}
}
