// SPDX-License-Identifier: MIT
// Package: lvseg/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn (1, 2, 3, ...)
//   • rng     = nil          (pure/deterministic unless seeded)
//   • shuffle = false        (segments appended in time order)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Segment ID strategy: position -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Append generated segments in a random order.
	shuffle bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
