package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/mkutlu/skylog/internal/journal"
)

// Snapshot represents the latest journal data available to the UI.
type Snapshot struct {
	Day                 time.Time       // the day the entries belong to
	Entries             []journal.Entry // append order
	Skipped             int             // malformed lines dropped on read
	Dates               []time.Time     // days with persisted entries, newest first
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsDegraded returns true when reads have been failing for multiple refreshes.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Counts returns the per-severity entry counts for the snapshot's day.
func (s Snapshot) Counts() map[journal.Severity]int {
	counts := make(map[journal.Severity]int, len(journal.Severities))
	for _, e := range s.Entries {
		counts[e.Status]++
	}
	return counts
}

// Store coordinates concurrent updates to the snapshot. The poller writes,
// the UI reads; the selected day is owned here so both sides agree on it.
type Store struct {
	mu       sync.RWMutex
	day      time.Time
	snapshot Snapshot
}

// NewStore creates a store tracking the given day.
func NewStore(day time.Time) *Store {
	return &Store{day: day}
}

// ActiveDay returns the day the poller should be reading.
func (s *Store) ActiveDay() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.day
}

// SetActiveDay switches the tracked day. The stale snapshot stays in place
// until the next Update so the UI never flashes empty.
func (s *Store) SetActiveDay(day time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.day = day
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(dayLog journal.DayLog, dates []time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Day = dayLog.Date
	s.snapshot.Entries = cloneEntries(dayLog.Entries)
	s.snapshot.Skipped = dayLog.Skipped
	s.snapshot.Dates = cloneDates(dates)
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
	snap.Dates = cloneDates(s.snapshot.Dates)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(entries []journal.Entry) []journal.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]journal.Entry, len(entries))
	copy(dup, entries)
	return dup
}

func cloneDates(dates []time.Time) []time.Time {
	if len(dates) == 0 {
		return nil
	}
	dup := make([]time.Time, len(dates))
	copy(dup, dates)
	return dup
}
