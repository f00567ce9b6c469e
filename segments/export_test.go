package segments

import "github.com/katalvlaran/lvseg/gps"

// SetHint forces the lookup hint to position i (-1 clears it) for the
// current generation, so tests can exercise every hint state.
func (l *List) SetHint(i int) {
	l.hint = i
	l.hintGen = l.gen
}

// Hint exposes the current hint position and whether it is still valid.
func (l *List) Hint() (int, bool) {
	return l.cachedHint()
}

// Cap exposes the storage capacity.
func (l *List) Cap() int {
	return cap(l.segs)
}

// PrefixEnds exposes a copy of the prefix-maximum End table, brought up to date.
func (l *List) PrefixEnds() []gps.Time {
	return append([]gps.Time(nil), l.prefixEnds()...)
}
