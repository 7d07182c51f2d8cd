// Package platform carries host-side driver implementations and sample
// board tables. MCU targets supply their own equivalents; everything here
// is portable Go used by tests and the CLI.
package platform

import "sync"

// SimLEDs is an in-memory LED driver recording the physical level of each
// handle. The active-low inversion is applied here, once, on both paths.
// A mutex guards the map so tests and the CLI can inspect freely.
type SimLEDs struct {
	mu       sync.Mutex
	levels   map[uint32]bool // physical level per handle
	failNext bool
}

// NewSimLEDs returns an empty simulated driver.
func NewSimLEDs() *SimLEDs {
	return &SimLEDs{levels: make(map[uint32]bool)}
}

func (s *SimLEDs) Set(handle uint32, state, activeLow bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return false
	}
	physical := state
	if activeLow {
		physical = !physical
	}
	s.levels[handle] = physical
	return true
}

func (s *SimLEDs) Get(handle uint32, activeLow bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	physical := s.levels[handle]
	if activeLow {
		return !physical
	}
	return physical
}

// Physical exposes the raw pin level for inspection.
func (s *SimLEDs) Physical(handle uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levels[handle]
}

// SetPhysical forces a raw pin level, bypassing the driver path.
func (s *SimLEDs) SetPhysical(handle uint32, level bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[handle] = level
}

// FailNextSet makes the next Set report failure; used to exercise the
// driver-failure path.
func (s *SimLEDs) FailNextSet() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}
