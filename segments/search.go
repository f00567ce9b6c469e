// SPDX-License-Identifier: MIT

package segments

import (
	"sort"

	"github.com/katalvlaran/lvseg/gps"
)

// Search returns a copy of a segment containing t, with ok=false when no
// stored segment contains it. An empty list is not an error.
//
// Errors:
//   - ErrNilList, ErrNotInitialized — list state.
//   - ErrNilTime                    — t is nil.
func (l *List) Search(t *gps.Time) (seg Segment, ok bool, err error) {
	i, err := l.SearchIndex(t)
	if err != nil || i < 0 {
		return Segment{}, false, err
	}

	return l.segs[i], true, nil
}

// SearchIndex returns the position of a segment containing t, or -1.
//
// Algorithm, in order:
//  1. Hint: test the last matched segment, O(1).
//  2. Successor: on a sorted list, when t lies past the hint, test the next
//     segment; on a verified disjoint list a miss there is final. O(1), the
//     common case for increasing query streams.
//  3. Sorted: binary search for the rightmost segment with Start <= t, O(log n);
//     when disjointness is not verified, scan back from it since an earlier,
//     longer segment may also contain t. The scan stops where the prefix
//     maximum of End drops to t or below, so it is O(k) in the overlap
//     cluster around t.
//  4. Unsorted: linear scan, O(n).
//
// On a match the position becomes the new hint.
func (l *List) SearchIndex(t *gps.Time) (int, error) {
	if err := l.check(); err != nil {
		return -1, err
	}
	if t == nil {
		return -1, ErrNilTime
	}
	if len(l.segs) == 0 {
		return -1, nil
	}

	if i, ok := l.cachedHint(); ok {
		c := l.segs[i].Contains(*t)
		if c == 0 {
			return i, nil
		}
		if c > 0 && l.sorted && i+1 < len(l.segs) {
			switch l.segs[i+1].Contains(*t) {
			case 0:
				l.remember(i + 1)
				return i + 1, nil
			case -1:
				if l.strict {
					return -1, nil
				}
			}
		}
	}

	var idx int
	if l.sorted {
		idx = l.searchSorted(*t)
	} else {
		idx = l.searchLinear(*t)
	}
	if idx >= 0 {
		l.remember(idx)
	}

	return idx, nil
}

func (l *List) searchSorted(t gps.Time) int {
	// k is the rightmost segment starting at or before t.
	k := sort.Search(len(l.segs), func(j int) bool { return l.segs[j].Start.Cmp(t) > 0 }) - 1
	if k < 0 {
		return -1
	}
	if l.strict {
		if l.segs[k].Contains(t) == 0 {
			return k
		}
		return -1
	}
	// Nothing at or before j can contain t once every End there is <= t.
	ends := l.prefixEnds()
	for j := k; j >= 0 && ends[j].Cmp(t) > 0; j-- {
		if l.segs[j].Contains(t) == 0 {
			return j
		}
	}

	return -1
}

func (l *List) searchLinear(t gps.Time) int {
	for i := range l.segs {
		if l.segs[i].Contains(t) == 0 {
			return i
		}
	}

	return -1
}

// Range returns the earliest Start and the latest End of the list.
//
// On a sorted list the result is read from the first and last segments in
// O(1). That End is the true maximum only when the list is also disjoint;
// for a sorted list with overlaps an earlier, longer segment may end later.
// Call Coalesce first when an exact bound is required. Unsorted lists are
// scanned in O(n).
//
// Errors:
//   - ErrNilList, ErrNotInitialized — list state.
//   - ErrEmptyList                  — no segments.
func (l *List) Range() (start, end gps.Time, err error) {
	if err := l.check(); err != nil {
		return gps.Time{}, gps.Time{}, err
	}
	n := len(l.segs)
	if n == 0 {
		return gps.Time{}, gps.Time{}, ErrEmptyList
	}
	if l.sorted {
		return l.segs[0].Start, l.segs[n-1].End, nil
	}

	start, end = l.segs[0].Start, l.segs[0].End
	for _, s := range l.segs[1:] {
		start = gps.Earlier(start, s.Start)
		end = gps.Later(end, s.End)
	}

	return start, end, nil
}
