package segments_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvseg/gps"
	"github.com/katalvlaran/lvseg/segments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	time1  = ts(794285000, 602350000)
	time2  = ts(794285010, 902350000)
	time3  = ts(1794286020, 702351111)
	time3p = ts(394285040, 502351234)
	time4a = ts(794285020, 400000002)
	time4b = ts(794285020, 555555555)
	time4c = ts(794285030, 702351111)
)

// TestNewSegment_Valid covers normal and zero-length construction.
func TestNewSegment_Valid(t *testing.T) {
	s, err := segments.NewSegment(&time1, &time2, 5)
	require.NoError(t, err)
	assert.Equal(t, segments.Segment{Start: time1, End: time2, ID: 5}, s)

	p, err := segments.NewSegment(&time3, &time3, 6)
	require.NoError(t, err, "zero-length segment is valid")
	assert.Equal(t, time3, p.Start)
	assert.Equal(t, time3, p.End)
	assert.Equal(t, 6, p.ID)
}

// TestNewSegment_Errors checks the error kind of every rejected input.
func TestNewSegment_Errors(t *testing.T) {
	_, err := segments.NewSegment(&time2, &time1, 0)
	assert.ErrorIs(t, err, segments.ErrEndBeforeStart)
	assert.ErrorIs(t, err, segments.ErrDomain)

	_, err = segments.NewSegment(nil, &time3, 0)
	assert.ErrorIs(t, err, segments.ErrNilTime)
	assert.ErrorIs(t, err, segments.ErrFault)

	_, err = segments.NewSegment(&time2, nil, 0)
	assert.ErrorIs(t, err, segments.ErrFault)

	bad := gps.Time{Sec: 1, Nano: -3}
	_, err = segments.NewSegment(&bad, &time2, 0)
	assert.ErrorIs(t, err, segments.ErrBadTime)
	assert.ErrorIs(t, err, segments.ErrDomain)
	assert.False(t, errors.Is(err, segments.ErrFault), "kinds must not overlap")
}

// TestSet_NoPartialWrite ensures Set leaves the target untouched on failure.
func TestSet_NoPartialWrite(t *testing.T) {
	s := seg1
	err := segments.Set(&s, &time2, &time1, 99)
	assert.ErrorIs(t, err, segments.ErrEndBeforeStart)
	assert.Equal(t, seg1, s)

	assert.ErrorIs(t, segments.Set(nil, &time1, &time2, 0), segments.ErrNilSegment)

	require.NoError(t, segments.Set(&s, &time1, &time2, 5))
	assert.Equal(t, segments.Segment{Start: time1, End: time2, ID: 5}, s)
}

// TestContains_HalfOpen verifies -1/0/+1 placement and the point-segment rule.
func TestContains_HalfOpen(t *testing.T) {
	cases := []struct {
		name string
		at   gps.Time
		seg  segments.Segment
		want int
	}{
		{"before", time1, seg2, -1},
		{"after", time3, seg2, 1},
		{"at start", time4a, seg2, 0},
		{"inside", time4b, seg2, 0},
		{"past end", time4c, seg2, 1},
		{"at end", seg2.End, seg2, 1},
		{"point at itself", time3p, seg3p, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.seg.Contains(tc.at))
			got, err := segments.Contains(&tc.at, &tc.seg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestContains_NilArgs: nil time is "less than", nil segment is a fault.
func TestContains_NilArgs(t *testing.T) {
	got, err := segments.Contains(nil, &seg2)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	_, err = segments.Contains(&time1, nil)
	assert.ErrorIs(t, err, segments.ErrNilSegment)
}

// TestCompare_Ordering covers start/end keys and ID independence.
func TestCompare_Ordering(t *testing.T) {
	pairs := []struct {
		a, b segments.Segment
		want int
	}{
		{seg1, seg2, -1},
		{seg2, seg1, 1},
		{seg2, seg2, 0},
		{seg1, seg3p, 1},
		{seg3p, seg3p, 0},
		{seg5a, seg5b, -1},
		{seg5b, seg5a, 1},
	}
	for _, p := range pairs {
		got, err := segments.Compare(&p.a, &p.b)
		require.NoError(t, err)
		assert.Equal(t, p.want, got, "%v vs %v", p.a, p.b)
	}

	other := seg2
	other.ID = 12345
	assert.Equal(t, 0, seg2.Cmp(other), "ID must not affect ordering")

	_, err := segments.Compare(nil, &seg5a)
	assert.ErrorIs(t, err, segments.ErrNilSegment)
	_, err = segments.Compare(&seg5b, nil)
	assert.ErrorIs(t, err, segments.ErrFault)
}

// TestSegment_DurationString checks the convenience accessors.
func TestSegment_DurationString(t *testing.T) {
	s := secs(10, 25, 7)
	assert.Equal(t, "15s", s.Duration().String())
	assert.Equal(t, "[10.000000000, 25.000000000) #7", s.String())
}
