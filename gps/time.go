// SPDX-License-Identifier: MIT

package gps

import (
	"errors"
	"fmt"
	"time"
)

// NanoPerSec is the number of nanoseconds in one second.
const NanoPerSec = 1_000_000_000

// Sentinel errors for gps values.
var (
	// ErrNanoRange indicates a nanosecond field outside [0, NanoPerSec).
	ErrNanoRange = errors.New("gps: nanoseconds out of range [0, 999999999]")

	// ErrSyntax indicates text that is not a decimal "sec[.frac]" instant.
	ErrSyntax = errors.New("gps: invalid time syntax")
)

// Time is an instant with nanosecond resolution.
//
// The zero value is the epoch instant 0.000000000 and is valid.
type Time struct {
	// Sec is the whole-second part; it may be negative.
	Sec int64

	// Nano is the sub-second part in [0, 999999999].
	Nano int32
}

// New returns the instant sec + nano·10⁻⁹.
// Returns ErrNanoRange if nano is outside [0, NanoPerSec).
func New(sec, nano int64) (Time, error) {
	if nano < 0 || nano >= NanoPerSec {
		return Time{}, fmt.Errorf("%w: got %d", ErrNanoRange, nano)
	}

	return Time{Sec: sec, Nano: int32(nano)}, nil
}

// FromNanos converts a signed nanosecond count into a Time, flooring toward
// negative infinity so that Nano stays non-negative.
func FromNanos(ns int64) Time {
	sec := ns / NanoPerSec
	rem := ns % NanoPerSec
	if rem < 0 {
		sec--
		rem += NanoPerSec
	}

	return Time{Sec: sec, Nano: int32(rem)}
}

// IsValid reports whether Nano lies within [0, NanoPerSec).
func (t Time) IsValid() bool {
	return t.Nano >= 0 && t.Nano < NanoPerSec
}

// Cmp orders t against u lexicographically by (Sec, Nano).
// Returns -1 if t < u, 0 if t == u and +1 if t > u.
func (t Time) Cmp(u Time) int {
	switch {
	case t.Sec < u.Sec:
		return -1
	case t.Sec > u.Sec:
		return 1
	case t.Nano < u.Nano:
		return -1
	case t.Nano > u.Nano:
		return 1
	}

	return 0
}

// Compare is the pointer form of Cmp. A nil time compares less than every
// non-nil time; two nil times compare equal.
func Compare(a, b *Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	return a.Cmp(*b)
}

// Before reports whether t is strictly earlier than u.
func (t Time) Before(u Time) bool { return t.Cmp(u) < 0 }

// After reports whether t is strictly later than u.
func (t Time) After(u Time) bool { return t.Cmp(u) > 0 }

// Equal reports whether t and u denote the same instant.
func (t Time) Equal(u Time) bool { return t == u }

// Add returns t shifted by d, carrying nanoseconds into seconds.
func (t Time) Add(d time.Duration) Time {
	sec := t.Sec + int64(d/time.Second)
	nano := int64(t.Nano) + int64(d%time.Second)
	if nano >= NanoPerSec {
		sec++
		nano -= NanoPerSec
	} else if nano < 0 {
		sec--
		nano += NanoPerSec
	}

	return Time{Sec: sec, Nano: int32(nano)}
}

// Sub returns the duration t-u. Differences beyond ~292 years overflow
// time.Duration.
func (t Time) Sub(u Time) time.Duration {
	return time.Duration(t.Sec-u.Sec)*time.Second + time.Duration(t.Nano-u.Nano)
}

// Earlier returns the smaller of t and u.
func Earlier(t, u Time) Time {
	if u.Cmp(t) < 0 {
		return u
	}

	return t
}

// Later returns the larger of t and u.
func Later(t, u Time) Time {
	if u.Cmp(t) > 0 {
		return u
	}

	return t
}

// DecimalPlaces returns how many fractional digits (0, 3, 6 or 9) are needed
// to print t exactly.
func (t Time) DecimalPlaces() int {
	switch {
	case t.Nano == 0:
		return 0
	case t.Nano%1_000_000 == 0:
		return 3
	case t.Nano%1_000 == 0:
		return 6
	}

	return 9
}
