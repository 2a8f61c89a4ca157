package rights

import (
	"context"
	"fmt"
	"sync/atomic"
)

// MemorySource serves the latest snapshot it has been given. Snapshots are
// swapped atomically, so a request that has pinned a snapshot keeps reading
// from it while a newer one is installed.
type MemorySource struct {
	current atomic.Pointer[Snapshot]
}

var _ Source = &MemorySource{}

func NewMemorySource(initial *Snapshot) *MemorySource {
	var m MemorySource

	if initial != nil {
		m.current.Store(initial)
	}

	return &m
}

// Replace the current snapshot.
func (m *MemorySource) Replace(s *Snapshot) {
	m.current.Store(s)
}

// Current returns the current snapshot, or nil if no snapshot has been
// loaded.
func (m *MemorySource) Current() *Snapshot {
	return m.current.Load()
}

func (m *MemorySource) Snapshot(_ context.Context) (View, error) {
	s := m.current.Load()
	if s == nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, ErrNoSnapshot)
	}

	return s, nil
}

// Check is used as a readiness check.
func (m *MemorySource) Check(_ context.Context) error {
	if m.current.Load() == nil {
		return ErrNoSnapshot
	}

	return nil
}
