// SPDX-License-Identifier: MIT

package segments

import (
	"slices"

	"github.com/katalvlaran/lvseg/gps"
)

// Sort orders the list stably by (Start, End) and sets the sorted flag.
// The disjoint flag is left as it was: sorting overlapping segments does not
// make them disjoint. The lookup hint is invalidated.
// Complexity: O(n log n).
func (l *List) Sort() error {
	if err := l.check(); err != nil {
		return err
	}
	l.sort()

	return nil
}

func (l *List) sort() {
	if !l.sorted {
		slices.SortStableFunc(l.segs, func(a, b Segment) int { return a.Cmp(b) })
	}
	l.sorted = true
	l.gen++
}

// Coalesce merges every group of overlapping or touching segments into one
// segment spanning the group, leaving a sorted, disjoint list.
//
// Algorithm:
//  1. Sort if the list is not sorted.
//  2. Walk left to right keeping a current run; a segment whose Start is
//     <= the run's End extends the run to the later End, otherwise it starts
//     a new run.
//  3. The runs replace the list contents in place.
//
// A merged run keeps the ID of its first (earliest) segment.
//
// Complexity: O(n) on a sorted list, O(n log n) otherwise.
func (l *List) Coalesce() error {
	if err := l.check(); err != nil {
		return err
	}
	l.sort()

	if len(l.segs) > 1 {
		// Write index never passes read index, so compaction is in place.
		out := l.segs[:1]
		for _, s := range l.segs[1:] {
			run := &out[len(out)-1]
			if s.Start.Cmp(run.End) <= 0 {
				run.End = gps.Later(run.End, s.End)
				continue
			}
			out = append(out, s)
		}
		clear(l.segs[len(out):])
		l.segs = out
	}
	l.sorted, l.disjoint, l.strict = true, true, true
	l.gen++

	return nil
}

// Keep clips the list to the window [start, end): segments outside the window
// are removed and segments straddling a window edge are cut at it. Segments
// whose clipped extent is empty, including point segments, are dropped.
//
// Errors:
//   - ErrNilList, ErrNotInitialized — list state.
//   - ErrNilTime                    — start or end is nil.
//   - ErrEndBeforeStart             — end < start.
//
// Complexity: O(n).
func (l *List) Keep(start, end *gps.Time) error {
	if err := l.check(); err != nil {
		return err
	}
	if start == nil || end == nil {
		return ErrNilTime
	}
	window := Segment{Start: *start, End: *end}
	if err := window.validate(); err != nil {
		return err
	}

	out := l.segs[:0]
	l.dplaces = 0
	for _, s := range l.segs {
		s.Start = gps.Later(s.Start, window.Start)
		s.End = gps.Earlier(s.End, window.End)
		if s.Start.Cmp(s.End) >= 0 {
			continue
		}
		out = append(out, s)
		l.notePlaces(s.Start, s.End)
	}
	clear(l.segs[len(out):])
	l.segs = out

	// Clipping can tie previously distinct starts, so re-derive the order.
	l.sorted = slices.IsSortedFunc(l.segs, func(a, b Segment) int { return a.Cmp(b) })
	l.gen++

	return nil
}
