package segments_test

import (
	"testing"

	"github.com/katalvlaran/lvseg/gps"
	"github.com/katalvlaran/lvseg/segments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLifecycle_States walks a list through every lifecycle state.
func TestLifecycle_States(t *testing.T) {
	var l segments.List
	assert.False(t, l.IsInitialized(), "zero List is uninitialized")
	assert.Equal(t, segments.StateUninitialized, l.State())
	assert.ErrorIs(t, l.Append(&seg1), segments.ErrNotInitialized)
	assert.ErrorIs(t, l.Clear(), segments.ErrInvalidState)

	require.NoError(t, l.Init())
	assert.True(t, l.IsInitialized())
	assert.Equal(t, segments.StateReady, l.State())
	assert.True(t, l.Sorted())
	assert.True(t, l.Disjoint())
	assert.Equal(t, 0, l.Len())

	mustAppend(&l, seg2, seg1)
	assert.False(t, l.Sorted())

	require.NoError(t, l.Clear())
	assert.True(t, l.IsInitialized(), "Clear keeps the list initialized")
	assert.True(t, l.Sorted())
	assert.True(t, l.Disjoint())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.DecimalPlaces())
	require.NoError(t, l.Append(&seg1), "cleared list accepts appends")

	require.NoError(t, l.Free())
	assert.Equal(t, segments.StateReleased, l.State())
	assert.Equal(t, "released", l.State().String())
	assert.ErrorIs(t, l.Append(&seg1), segments.ErrNotInitialized)
	_, err := l.SearchIndex(&time1)
	assert.ErrorIs(t, err, segments.ErrNotInitialized)
	assert.ErrorIs(t, l.Free(), segments.ErrNotInitialized)

	require.NoError(t, l.Init(), "a freed list can be re-initialized")
	assert.Equal(t, 0, l.Len())
}

// TestNilList_Faults verifies every operation rejects a nil receiver.
func TestNilList_Faults(t *testing.T) {
	var l *segments.List
	assert.ErrorIs(t, l.Init(), segments.ErrNilList)
	assert.ErrorIs(t, l.Clear(), segments.ErrNilList)
	assert.ErrorIs(t, l.Append(&seg1), segments.ErrFault)
	assert.ErrorIs(t, l.Sort(), segments.ErrNilList)
	assert.ErrorIs(t, l.Coalesce(), segments.ErrNilList)
	_, _, err := l.Search(&time1)
	assert.ErrorIs(t, err, segments.ErrNilList)
	_, _, err = l.Range()
	assert.ErrorIs(t, err, segments.ErrNilList)
	assert.False(t, l.IsInitialized())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, segments.StateUninitialized, l.State())
}

// TestAppend_Rejects checks validation and that rejected appends change nothing.
func TestAppend_Rejects(t *testing.T) {
	l := mustAppend(segments.NewList(), seg1)

	assert.ErrorIs(t, l.Append(nil), segments.ErrNilSegment)

	bad := segments.Segment{Start: ts(794285020, 602350000), End: ts(794285010, 902350000), ID: 999}
	assert.ErrorIs(t, l.Append(&bad), segments.ErrEndBeforeStart)

	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Sorted())
	assert.True(t, l.Disjoint())
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, seg1, got)
}

// TestAppend_Flags reproduces the append sequence 1, 6a, 6b, 4a.
func TestAppend_Flags(t *testing.T) {
	l := segments.NewList()

	require.NoError(t, l.Append(&seg1))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, segments.AllocBlock, l.Cap(), "first allocation uses AllocBlock")

	require.NoError(t, l.Append(&seg6a))
	assert.True(t, l.Sorted(), "increasing, non-touching append keeps sorted")
	assert.True(t, l.Disjoint(), "increasing, non-touching append keeps disjoint")

	require.NoError(t, l.Append(&seg6b))
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Sorted())
	assert.False(t, l.Disjoint(), "6b overlaps 6a")

	require.NoError(t, l.Append(&seg4a))
	assert.Equal(t, 4, l.Len())
	assert.False(t, l.Sorted(), "4a starts before 6b")
	assert.False(t, l.Disjoint())
}

// TestAppend_Touching clears disjoint for abutting segments.
func TestAppend_Touching(t *testing.T) {
	l := mustAppend(segments.NewList(), seg4a, seg4b)
	assert.True(t, l.Sorted())
	assert.False(t, l.Disjoint(), "4a end == 4b start")
}

// TestAppend_OnlyPreviousChecked documents the O(1) disjoint maintenance:
// an out-of-order segment overlapping a non-adjacent one is not detected.
func TestAppend_OnlyPreviousChecked(t *testing.T) {
	l := mustAppend(segments.NewList(), secs(0, 10, 1), secs(20, 30, 2), secs(5, 8, 3))
	assert.False(t, l.Sorted())
	assert.True(t, l.Disjoint(), "[5,8) is only compared with [20,30)")

	// Search stays correct regardless of the optimistic flag.
	require.NoError(t, l.Sort())
	assert.True(t, l.Disjoint(), "Sort does not recompute disjoint")
	at := ts(9, 0)
	got, ok, err := l.Search(&at)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, got.ID)

	require.NoError(t, l.Coalesce())
	assert.Equal(t, []segments.Segment{secs(0, 10, 1), secs(20, 30, 2)}, l.Segments())
}

// TestAppend_Growth verifies geometric growth and that copies are stored.
func TestAppend_Growth(t *testing.T) {
	l := segments.NewList()
	for i := 0; i < segments.AllocBlock+1; i++ {
		s := secs(int64(2*i), int64(2*i+1), i)
		require.NoError(t, l.Append(&s))
		s.ID = -1 // mutating the caller's copy must not affect the list
	}
	assert.Equal(t, segments.AllocBlock+1, l.Len())
	assert.Equal(t, 2*segments.AllocBlock, l.Cap())
	assert.True(t, l.Sorted())
	assert.True(t, l.Disjoint())

	got, err := l.Get(segments.AllocBlock)
	require.NoError(t, err)
	assert.Equal(t, segments.AllocBlock, got.ID)

	_, err = l.Get(-1)
	assert.ErrorIs(t, err, segments.ErrIndexOutOfRange)
	_, err = l.Get(l.Len())
	assert.ErrorIs(t, err, segments.ErrInvalidState)
}

// TestAppend_DecimalPlaces tracks the digits needed to print every bound.
func TestAppend_DecimalPlaces(t *testing.T) {
	dtime := []gps.Time{
		ts(794000000, 0),
		ts(794000000, 100000000),
		ts(794000000, 220000000),
		ts(794000000, 333000000),
		ts(794000000, 444400000),
		ts(794000000, 555550000),
		ts(794000000, 666666000),
		ts(794000000, 777777700),
		ts(794000000, 888888880),
		ts(794000000, 999999999),
	}
	l := segments.NewList()
	assert.Equal(t, 0, l.DecimalPlaces())
	for i := 0; i < len(dtime); i++ {
		s, err := segments.NewSegment(&dtime[0], &dtime[i], 0)
		require.NoError(t, err)
		require.NoError(t, l.Append(&s))
		assert.Equal(t, 3*((i+2)/3), l.DecimalPlaces(), "after segment %d", i)
	}
	for i := len(dtime) - 1; i >= 0; i-- {
		s, err := segments.NewSegment(&dtime[0], &dtime[i], 0)
		require.NoError(t, err)
		require.NoError(t, l.Append(&s))
		assert.Equal(t, 9, l.DecimalPlaces(), "record never shrinks on append")
	}
}

// TestSegments_Copy ensures Segments returns a detached copy.
func TestSegments_Copy(t *testing.T) {
	l := mustAppend(segments.NewList(), seg1, seg2)
	out := l.Segments()
	require.Len(t, out, 2)
	out[0].ID = 777
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, seg1.ID, got.ID)

	assert.Nil(t, segments.NewList().Segments())
}

// TestString_Layout checks the text rendering with the decimal-place record.
func TestString_Layout(t *testing.T) {
	l := mustAppend(segments.NewList(), secs(10, 20, 1), mk(30, 500000000, 40, 0, 2))
	assert.Equal(t, "1 10.000 20.000\n2 30.500 40.000\n", l.String())

	var zero segments.List
	assert.Equal(t, "<uninitialized>", zero.String())
}
