// SPDX-License-Identifier: MIT

package gps

import (
	"fmt"
	"strconv"
	"strings"
)

// pow10 holds 10^k for k = 0..9.
var pow10 = [...]int64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// String renders t with all nine fractional digits, e.g. "794285000.602350000".
func (t Time) String() string {
	return t.Format(9)
}

// Format renders t as a decimal number of seconds with the given number of
// fractional digits. places is clamped to [0, 9]; extra digits are truncated
// toward zero. A negative time that truncates to zero prints without a sign.
func (t Time) Format(places int) string {
	if places < 0 {
		places = 0
	} else if places > 9 {
		places = 9
	}

	// Work on magnitude so that -0.5 prints as "-0.5", not "-1.500".
	// uint64 holds the magnitude of math.MinInt64.
	neg := t.Sec < 0
	whole, frac := uint64(t.Sec), int64(t.Nano)
	if neg {
		if frac != 0 {
			whole = uint64(-(t.Sec + 1))
			frac = NanoPerSec - frac
		} else {
			whole = -whole
		}
	}
	digits := frac / pow10[9-places]

	var sb strings.Builder
	if neg && (whole != 0 || digits != 0) {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(whole, 10))
	if places > 0 {
		fmt.Fprintf(&sb, ".%0*d", places, digits)
	}

	return sb.String()
}

// Parse reads a decimal "sec[.frac]" instant with an optional leading sign.
// At most nine fractional digits are accepted.
//
// Example:
//
//	t, _ := gps.Parse("-0.5") // {Sec: -1, Nano: 500000000}
func Parse(s string) (Time, error) {
	text := strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(text, "-"):
		neg = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(text, ".")
	if intPart == "" && (!hasDot || fracPart == "") {
		return Time{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if len(fracPart) > 9 || !allDigits(intPart) || !allDigits(fracPart) {
		return Time{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var whole int64
	if intPart != "" {
		v, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		whole = v
	}
	var frac int64
	if fracPart != "" {
		v, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		frac = v * pow10[9-len(fracPart)]
	}

	if !neg {
		return Time{Sec: whole, Nano: int32(frac)}, nil
	}
	if frac == 0 {
		return Time{Sec: -whole}, nil
	}

	return Time{Sec: -whole - 1, Nano: int32(NanoPerSec - frac)}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return t
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
