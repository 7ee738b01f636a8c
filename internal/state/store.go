package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/eventscout/internal/backend"
)

// Snapshot is the latest backend health seen by the poller.
type Snapshot struct {
	Health              backend.Health
	HasHealth           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the backend has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Healthy is true when the last poll succeeded and the backend reported ok.
func (s Snapshot) Healthy() bool {
	return s.HasHealth && s.LastError == nil && s.Health.OK()
}

// Store guards the snapshot shared between the poller goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a poll result. On error the previous health is kept and the
// failure counted.
func (s *Store) Update(health *backend.Health, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	if health != nil {
		s.snapshot.Health = *health
		s.snapshot.HasHealth = true
	} else {
		s.snapshot.HasHealth = false
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
