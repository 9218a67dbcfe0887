// Package epoch holds the process-wide current epoch.
package epoch

import (
	"sync/atomic"
	"time"

	"crossing/internal/domain/entity"
	"crossing/internal/domain/service"
)

// State is the single holder of the current epoch. Readers call Current
// concurrently; only the matching pass calls Rotate.
type State struct {
	current atomic.Pointer[entity.Epoch]
}

// New starts the first epoch at the clock's current time.
func New(clock service.Clock) *State {
	s := &State{}
	now := clock.Now()
	s.current.Store(&entity.Epoch{ID: now.UnixMilli(), StartedAt: now})

	return s
}

// Current returns the epoch new ingestions target.
func (s *State) Current() entity.Epoch {
	return *s.current.Load()
}

// Rotate makes a new epoch current and returns the one it closed.
// The new id is strictly greater than the closed one even if the clock stalls.
func (s *State) Rotate(now time.Time) entity.Epoch {
	for {
		prev := s.current.Load()
		id := now.UnixMilli()
		if id <= prev.ID {
			id = prev.ID + 1
		}

		next := &entity.Epoch{ID: id, StartedAt: now}
		if s.current.CompareAndSwap(prev, next) {
			return *prev
		}
	}
}
