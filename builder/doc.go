// Package builder provides deterministic, functional-options constructors for
// synthetic segment lists: regular science-run style windows, randomly
// scattered windows and shuffled append orders. It is the fixture factory used
// by tests, benchmarks and the segtool CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildList:       creates a segments.List and applies Constructors in order.
//     – Constructor:     func(*segments.List, builderConfig) error.
//   - Constructors:
//     – Regular:         n windows of fixed duration separated by a fixed gap
//     (a negative gap produces overlapping windows).
//     – Random:          n windows with random offsets and durations (needs RNG).
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithIDScheme, WithShuffle.
//   - Segment-ID schemes (IDFn implementations):
//     – DefaultIDFn:     1-based sequence (1, 2, 3, …).
//     – IndexIDFn:       0-based sequence.
//     – ZeroIDFn:        every ID is 0.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical lists.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is works on every returned error).
//
// Example:
//
//	list, err := builder.BuildList(
//	  []builder.BuilderOption{builder.WithSeed(1), builder.WithShuffle()},
//	  builder.Regular(100, gps.Time{Sec: 800000000}, time.Minute, 30*time.Second),
//	)
package builder
