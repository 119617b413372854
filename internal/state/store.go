package state

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/five82/pixday/internal/gallery"
)

// Snapshot represents the latest gallery data available to the UI.
type Snapshot struct {
	Entries             []gallery.Entry   // newest first
	Calendar            map[string]string // date key → entry id
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive refresh failures
}

// Degraded returns true when the store has failed to refresh several times in a row.
func (s Snapshot) Degraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Entry looks up an entry by id.
func (s Snapshot) Entry(id string) (gallery.Entry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return gallery.Entry{}, false
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(entries []gallery.Entry, calendar map[string]string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Entries = cloneEntries(entries)
	s.snapshot.Calendar = cloneCalendar(calendar)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	snap.Calendar = cloneCalendar(s.snapshot.Calendar)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Image payloads are never mutated after storage, so they are shared.
func cloneEntries(items []gallery.Entry) []gallery.Entry {
	if len(items) == 0 {
		return nil
	}
	dup := make([]gallery.Entry, len(items))
	copy(dup, items)
	return dup
}

func cloneCalendar(days map[string]string) map[string]string {
	if days == nil {
		return map[string]string{}
	}
	return maps.Clone(days)
}
