package segments_test

import (
	"github.com/katalvlaran/lvseg/gps"
	"github.com/katalvlaran/lvseg/segments"
)

// ts builds a gps.Time literal.
func ts(sec int64, nano int32) gps.Time {
	return gps.Time{Sec: sec, Nano: nano}
}

// mk builds a segment literal without validation.
func mk(s1 int64, n1 int32, s2 int64, n2 int32, id int) segments.Segment {
	return segments.Segment{Start: ts(s1, n1), End: ts(s2, n2), ID: id}
}

// secs builds the whole-second segment [a, b).
func secs(a, b int64, id int) segments.Segment {
	return mk(a, 0, b, 0, id)
}

// Fixture segments shared by several tests.
var (
	seg1  = mk(794285000, 602350000, 794285010, 902350000, 1)
	seg2  = mk(794285020, 400000002, 794285030, 702351111, 2)
	seg3p = mk(394285040, 502351234, 394285040, 502351234, 3) // point
	seg4a = mk(794285050, 602350000, 794285051, 300200100, 4)
	seg4b = mk(794285051, 300200100, 794285055, 902350000, 44) // touches 4a
	seg5a = mk(1794285060, 604350000, 1794285061, 400300200, 5)
	seg5b = mk(1794285060, 604350000, 1794285061, 500400300, 55) // same start as 5a
	seg6a = mk(794285062, 444444444, 794285064, 333333333, 6)
	seg6b = mk(794285063, 666666666, 794285066, 555555555, 66) // overlaps 6a and 6c
	seg6c = mk(794285065, 888888888, 794285067, 777777777, 666)
)

// mustAppend appends every segment or panics; for building fixtures only.
func mustAppend(l *segments.List, segs ...segments.Segment) *segments.List {
	for i := range segs {
		if err := l.Append(&segs[i]); err != nil {
			panic(err)
		}
	}

	return l
}
