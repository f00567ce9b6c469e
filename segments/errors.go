// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the segments package.
//
// Error policy:
//   • Three kind sentinels classify every failure (fault/domain/state).
//   • Condition sentinels wrap exactly one kind with %w, so callers can branch
//     either on the precise condition or on the kind.
//   • Context (offending values) is attached at the return site with %w.

package segments

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrFault indicates a required pointer argument was nil.
	ErrFault = errors.New("segments: nil argument")

	// ErrDomain indicates a value outside its permitted domain.
	ErrDomain = errors.New("segments: value out of domain")

	// ErrInvalidState indicates an operation not permitted in the list's current state.
	ErrInvalidState = errors.New("segments: invalid state")
)

// Conditions.
var (
	// ErrNilList indicates a nil *List receiver.
	ErrNilList = fmt.Errorf("%w: list", ErrFault)

	// ErrNilSegment indicates a nil *Segment argument.
	ErrNilSegment = fmt.Errorf("%w: segment", ErrFault)

	// ErrNilTime indicates a nil *gps.Time argument where one is required.
	ErrNilTime = fmt.Errorf("%w: time", ErrFault)

	// ErrEndBeforeStart indicates a segment whose end precedes its start.
	ErrEndBeforeStart = fmt.Errorf("%w: end before start", ErrDomain)

	// ErrBadTime indicates a bound whose nanosecond field is out of range.
	ErrBadTime = fmt.Errorf("%w: malformed time", ErrDomain)

	// ErrNotInitialized indicates use of a list that was never initialized or was freed.
	ErrNotInitialized = fmt.Errorf("%w: list not initialized", ErrInvalidState)

	// ErrEmptyList indicates a query that needs at least one segment.
	ErrEmptyList = fmt.Errorf("%w: list is empty", ErrInvalidState)

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidState)
)
