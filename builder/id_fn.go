// Package builder provides segment-ID schemes for list constructors.
package builder

// IDFn generates a segment identifier from its zero-based position in the
// list being built. It must be pure: the same idx always yields the same ID.
type IDFn func(idx int) int

// DefaultIDFn returns idx+FirstSegmentID, e.g. 0→1, 41→42.
func DefaultIDFn(idx int) int {
	return idx + FirstSegmentID
}

// IndexIDFn returns idx unchanged.
func IndexIDFn(idx int) int {
	return idx
}

// ZeroIDFn returns 0 for every segment.
func ZeroIDFn(int) int {
	return 0
}
