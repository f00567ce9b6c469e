// SPDX-License-Identifier: MIT

// Package segments represents, normalizes and queries lists of half-open
// time intervals ("segments") stamped with gps.Time bounds.
//
// What is a segment list?
//
//	A growable sequence of [start, end) intervals, each carrying an integer
//	ID, together with two derived flags:
//	  • sorted   — segments are non-decreasing by (start, end)
//	  • disjoint — no two segments overlap or touch
//	Typical producers append science-data availability windows or veto
//	intervals in roughly temporal order, normalize once with Coalesce and
//	then issue many Search queries with temporal locality.
//
// Key features:
//   - Append: amortized O(1), best-effort O(1) maintenance of sorted/disjoint
//   - Sort: stable by (start, end); identifiers are payload, never keys
//   - Coalesce: merge overlapping or touching segments in one pass
//   - Search: O(1) on a cached hit or on the next segment of a sequential
//     stream, O(log n) binary search on sorted disjoint lists, O(n) otherwise
//   - Range: O(1) on sorted lists, O(n) scan otherwise
//   - Keep: clip a list to a time window
//
// Lifecycle:
//
//	A List must be initialized before use: either call NewList or Init on a
//	zero List. Clear empties an initialized list and keeps it usable; Free
//	releases the storage and returns the list to the uninitialized state.
//	Operating on an uninitialized list returns ErrNotInitialized.
//
// Usage:
//
//	list := segments.NewList()
//	seg, _ := segments.NewSegment(&start, &end, 1)
//	if err := list.Append(&seg); err != nil {
//	  // handle ErrEndBeforeStart, ErrNilSegment, ...
//	}
//	_ = list.Coalesce()
//	hit, ok, _ := list.Search(&t)
//
// Errors:
//
//	Every failure matches exactly one kind with errors.Is:
//	  ErrFault        — a required pointer argument is nil
//	  ErrDomain       — a value violates a domain rule (end < start)
//	  ErrInvalidState — list not initialized, empty for Range, bad index
//	Not finding a segment in Search is a normal outcome, not an error.
//
// Concurrency:
//
//	List performs no locking; Search mutates the lookup hint. Share a list
//	between goroutines through SyncList or an external mutex.
package segments
