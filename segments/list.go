// SPDX-License-Identifier: MIT
//
// list.go — the List type, its lifecycle and Append.
//
// Invariants:
//   • sorted   ⇒ segs[i].Cmp(segs[i+1]) <= 0 for every i.
//   • strict   ⇒ sorted order of segs is pairwise disjoint (no overlap, no touch).
//     strict is the internal, verified form of disjoint used by Search;
//     disjoint itself is the best-effort flag exposed to callers.
//   • hint is trusted only while hintGen == gen; gen moves on every
//     reallocation, reorder or clear.
//   • endMax[i] is the latest End in segs[:i+1]. It is trusted only while
//     endGen == gen and may lag behind len(segs) after in-order appends.

package segments

import (
	"github.com/katalvlaran/lvseg/gps"
)

// AllocBlock is the capacity of the first allocation made by Append.
// Later growth doubles the capacity.
const AllocBlock = 64

// State is the lifecycle state of a List.
type State int

const (
	// StateUninitialized is the zero state: the list was never initialized.
	StateUninitialized State = iota

	// StateReady marks an initialized list, empty or not.
	StateReady

	// StateReleased marks a list whose storage was released by Free.
	// Like StateUninitialized, it must be re-initialized before use.
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateReleased:
		return "released"
	default:
		return "uninitialized"
	}
}

// List is an ordered, growable collection of segments.
//
// The zero value is uninitialized; use NewList or Init before any other call.
// A List owns copies of the segments appended to it.
type List struct {
	segs []Segment

	sorted   bool // non-decreasing by (Start, End)
	disjoint bool // best-effort: no overlap/touch between neighbours seen so far
	strict   bool // verified global disjointness, see file comment
	dplaces  int  // fractional digits needed to print every stored bound

	state State

	gen     uint64 // structural generation
	hint    int    // position of the last match, -1 for none
	hintGen uint64 // gen at which hint was recorded

	endMax []gps.Time // prefix maximum of End, see file comment
	endGen uint64     // gen at which endMax was built
}

// NewList returns an initialized, empty list.
func NewList() *List {
	l := &List{}
	l.reset(nil)
	l.state = StateReady

	return l
}

// Init marks l initialized and empty, sorted and disjoint.
// Any previous contents are dropped. Returns ErrNilList for a nil l.
// Complexity: O(1).
func (l *List) Init() error {
	if l == nil {
		return ErrNilList
	}
	l.reset(nil)
	l.state = StateReady

	return nil
}

// Clear releases the stored segments and resets the flags to sorted and
// disjoint. The list stays initialized.
//
// Errors:
//   - ErrNilList        — nil receiver.
//   - ErrNotInitialized — l is not initialized.
func (l *List) Clear() error {
	if err := l.check(); err != nil {
		return err
	}
	l.reset(nil)

	return nil
}

// Free releases the storage and returns l to the uninitialized state; every
// later call except Init fails with ErrNotInitialized.
func (l *List) Free() error {
	if err := l.check(); err != nil {
		return err
	}
	l.reset(nil)
	l.state = StateReleased

	return nil
}

// IsInitialized reports whether l is non-nil and ready for use.
func (l *List) IsInitialized() bool {
	return l != nil && l.state == StateReady
}

// State returns the lifecycle state of l. A nil list reports StateUninitialized.
func (l *List) State() State {
	if l == nil {
		return StateUninitialized
	}

	return l.state
}

// Len returns the number of stored segments; 0 for nil or uninitialized lists.
func (l *List) Len() int {
	if !l.IsInitialized() {
		return 0
	}

	return len(l.segs)
}

// Sorted reports the sorted flag.
func (l *List) Sorted() bool { return l.IsInitialized() && l.sorted }

// Disjoint reports the disjoint flag. The flag is maintained in O(1) per
// Append by comparing each new segment with its predecessor only; an
// out-of-order segment overlapping an older, non-adjacent one is not detected
// until Coalesce.
func (l *List) Disjoint() bool { return l.IsInitialized() && l.disjoint }

// DecimalPlaces returns the number of fractional digits (0, 3, 6 or 9)
// needed to print every stored bound exactly.
func (l *List) DecimalPlaces() int {
	if !l.IsInitialized() {
		return 0
	}

	return l.dplaces
}

// Get returns a copy of the i-th segment.
//
// Errors:
//   - ErrNilList, ErrNotInitialized — see check.
//   - ErrIndexOutOfRange            — i outside [0, Len()).
func (l *List) Get(i int) (Segment, error) {
	if err := l.check(); err != nil {
		return Segment{}, err
	}
	if i < 0 || i >= len(l.segs) {
		return Segment{}, ErrIndexOutOfRange
	}

	return l.segs[i], nil
}

// Segments returns a copy of the stored segments in list order.
// Returns nil for nil, uninitialized or empty lists.
func (l *List) Segments() []Segment {
	if !l.IsInitialized() || len(l.segs) == 0 {
		return nil
	}
	out := make([]Segment, len(l.segs))
	copy(out, l.segs)

	return out
}

// Append copies seg to the end of the list.
//
// Implementation:
//   - Stage 1: validate list state and segment; nothing changes on error.
//   - Stage 2: grow storage geometrically (AllocBlock, then doubling).
//   - Stage 3: compare seg with the previous last element only:
//     seg < last clears sorted, overlap or touch clears disjoint.
//
// Errors:
//   - ErrNilList, ErrNotInitialized — list state.
//   - ErrNilSegment                 — seg is nil.
//   - ErrBadTime, ErrEndBeforeStart — malformed segment.
//
// Complexity: amortized O(1).
func (l *List) Append(seg *Segment) error {
	if err := l.check(); err != nil {
		return err
	}
	if seg == nil {
		return ErrNilSegment
	}
	if err := seg.validate(); err != nil {
		return err
	}

	n := len(l.segs)
	if n == cap(l.segs) {
		l.grow()
	}
	if n > 0 {
		last := l.segs[n-1]
		outOfOrder := seg.Cmp(last) < 0
		touching := overlapsOrTouches(last, *seg)
		if outOfOrder {
			l.sorted = false
		}
		if touching {
			l.disjoint = false
		}
		if outOfOrder || touching {
			l.strict = false
		}
	}
	l.segs = append(l.segs, *seg)
	l.notePlaces(seg.Start, seg.End)

	return nil
}

// grow reallocates storage and invalidates the lookup hint.
func (l *List) grow() {
	newCap := AllocBlock
	if c := cap(l.segs); c > 0 {
		newCap = 2 * c
	}
	grown := make([]Segment, len(l.segs), newCap)
	copy(grown, l.segs)
	l.segs = grown
	l.gen++
}

// notePlaces widens dplaces to cover the given bounds.
func (l *List) notePlaces(ts ...gps.Time) {
	for _, t := range ts {
		if p := t.DecimalPlaces(); p > l.dplaces {
			l.dplaces = p
		}
	}
}

// reset installs segs as the list contents with all flags set and the hint dropped.
func (l *List) reset(segs []Segment) {
	l.segs = segs
	l.sorted, l.disjoint, l.strict = true, true, true
	l.dplaces = 0
	l.hint = -1
	l.endMax = nil
	l.gen++
}

// check validates the receiver for every list operation.
func (l *List) check() error {
	if l == nil {
		return ErrNilList
	}
	if l.state != StateReady {
		return ErrNotInitialized
	}

	return nil
}

// remember records position i as the lookup hint for the current generation.
func (l *List) remember(i int) {
	l.hint = i
	l.hintGen = l.gen
}

// cachedHint returns the hint position if it is still valid.
func (l *List) cachedHint() (int, bool) {
	if l.hint < 0 || l.hintGen != l.gen || l.hint >= len(l.segs) {
		return -1, false
	}

	return l.hint, true
}

// prefixEnds returns endMax brought up to date with segs. A stale table is
// rebuilt; a current one is only extended over segments appended since.
// Amortized O(1) per appended segment.
func (l *List) prefixEnds() []gps.Time {
	if l.endGen != l.gen {
		l.endMax = l.endMax[:0]
		l.endGen = l.gen
	}
	for i := len(l.endMax); i < len(l.segs); i++ {
		e := l.segs[i].End
		if i > 0 {
			e = gps.Later(e, l.endMax[i-1])
		}
		l.endMax = append(l.endMax, e)
	}

	return l.endMax
}
