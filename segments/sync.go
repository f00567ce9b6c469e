// SPDX-License-Identifier: MIT

package segments

import (
	"sync"

	"github.com/katalvlaran/lvseg/gps"
)

// SyncList guards a List with a sync.RWMutex so it can be shared between
// goroutines. Search takes the write lock because it moves the lookup hint;
// Range, Len and Snapshot take the read lock.
type SyncList struct {
	mu   sync.RWMutex
	list List
}

// NewSyncList returns an initialized, empty SyncList.
func NewSyncList() *SyncList {
	s := &SyncList{}
	_ = s.list.Init()

	return s
}

// Append appends seg under the write lock. See List.Append.
func (s *SyncList) Append(seg *Segment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Append(seg)
}

// Sort sorts the list under the write lock. See List.Sort.
func (s *SyncList) Sort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Sort()
}

// Coalesce normalizes the list under the write lock. See List.Coalesce.
func (s *SyncList) Coalesce() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Coalesce()
}

// Clear empties the list under the write lock. See List.Clear.
func (s *SyncList) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Clear()
}

// Search looks up t under the write lock. See List.Search.
func (s *SyncList) Search(t *gps.Time) (Segment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Search(t)
}

// Range reports the list extent under the read lock. See List.Range.
func (s *SyncList) Range() (gps.Time, gps.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list.Range()
}

// Len returns the number of segments under the read lock.
func (s *SyncList) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list.Len()
}

// Snapshot returns a copy of the segments under the read lock.
func (s *SyncList) Snapshot() []Segment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list.Segments()
}
