// SPDX-License-Identifier: MIT

package segments

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvseg/gps"
)

// Segment is the half-open interval [Start, End) with an identifier.
//
// Start == End denotes a point segment. Being zero-width, it contains no
// instant, not even Start. ID is payload: it never takes part in ordering.
type Segment struct {
	// Start is the first instant inside the segment.
	Start gps.Time

	// End is the first instant after the segment.
	End gps.Time

	// ID is a caller-defined identifier.
	ID int
}

// NewSegment returns the segment [start, end) with the given id.
//
// Errors:
//   - ErrNilTime        — start or end is nil.
//   - ErrBadTime        — a bound has nanoseconds outside [0, 1e9).
//   - ErrEndBeforeStart — end < start.
func NewSegment(start, end *gps.Time, id int) (Segment, error) {
	var s Segment
	if err := Set(&s, start, end, id); err != nil {
		return Segment{}, err
	}

	return s, nil
}

// Set overwrites seg with [start, end) and id. seg is left untouched on error.
// Returns ErrNilSegment for a nil seg, otherwise the errors of NewSegment.
func Set(seg *Segment, start, end *gps.Time, id int) error {
	if seg == nil {
		return ErrNilSegment
	}
	if start == nil || end == nil {
		return ErrNilTime
	}
	cand := Segment{Start: *start, End: *end, ID: id}
	if err := cand.validate(); err != nil {
		return err
	}
	*seg = cand

	return nil
}

// validate checks bound well-formedness and ordering.
func (s Segment) validate() error {
	if !s.Start.IsValid() || !s.End.IsValid() {
		return fmt.Errorf("%w: [%v, %v)", ErrBadTime, s.Start, s.End)
	}
	if s.End.Cmp(s.Start) < 0 {
		return fmt.Errorf("%w: [%v, %v)", ErrEndBeforeStart, s.Start, s.End)
	}

	return nil
}

// Contains locates t relative to s: -1 if t < Start, +1 if t >= End, and 0 if
// Start <= t < End. A point segment never yields 0.
func (s Segment) Contains(t gps.Time) int {
	if t.Cmp(s.Start) < 0 {
		return -1
	}
	if t.Cmp(s.End) >= 0 {
		return 1
	}

	return 0
}

// Cmp orders segments by Start, then by End. Segments with equal bounds
// compare equal regardless of ID.
func (s Segment) Cmp(o Segment) int {
	if c := s.Start.Cmp(o.Start); c != 0 {
		return c
	}

	return s.End.Cmp(o.End)
}

// Duration returns End - Start.
func (s Segment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// String renders the segment as "[start, end) #id".
func (s Segment) String() string {
	return fmt.Sprintf("[%v, %v) #%d", s.Start, s.End, s.ID)
}

// Contains is the pointer form of Segment.Contains.
// A nil t is treated as earlier than every instant and yields -1 without
// error; a nil s returns ErrNilSegment.
func Contains(t *gps.Time, s *Segment) (int, error) {
	if s == nil {
		return 0, ErrNilSegment
	}
	if t == nil {
		return -1, nil
	}

	return s.Contains(*t), nil
}

// Compare is the pointer form of Segment.Cmp. Returns ErrNilSegment if
// either argument is nil.
func Compare(a, b *Segment) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNilSegment
	}

	return a.Cmp(*b), nil
}

// overlapsOrTouches reports whether a and b share an instant or abut.
func overlapsOrTouches(a, b Segment) bool {
	return a.Start.Cmp(b.End) <= 0 && b.Start.Cmp(a.End) <= 0
}
