package poll

import (
	"sync"
	"time"

	"github.com/homearc/homearc/internal/api"
)

const maxBufferedEvents = 200

// Snapshot is the most recent view of the backend's pushed state. Each field
// is replaced wholesale by its poll loop; nothing accumulates between polls
// except the bounded event buffer.
type Snapshot struct {
	Status    api.StatusReport    `json:"status"`
	Progress  api.RefreshProgress `json:"refresh_progress"`
	Events    []api.Event         `json:"events"`
	UpdatedAt time.Time           `json:"updated_at"`

	// LastError is the most recent transport failure, cleared by the next
	// successful poll. The ui-api surfaces it as a "backend offline" banner.
	LastError string `json:"last_error,omitempty"`
}

// Store holds the snapshot behind a mutex for concurrent reads by ui-api
// handlers while the poll loops write.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore() *Store {
	return &Store{snap: Snapshot{Events: []api.Event{}}}
}

// Current returns a copy of the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	snap.Events = append([]api.Event{}, s.snap.Events...)
	return snap
}

func (s *Store) setStatus(status api.StatusReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Status = status
	s.snap.UpdatedAt = time.Now().UTC()
	s.snap.LastError = ""
}

func (s *Store) setProgress(progress api.RefreshProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Progress = progress
	s.snap.UpdatedAt = time.Now().UTC()
	s.snap.LastError = ""
}

func (s *Store) appendEvents(events []api.Event) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Events = append(s.snap.Events, events...)
	if len(s.snap.Events) > maxBufferedEvents {
		s.snap.Events = s.snap.Events[len(s.snap.Events)-maxBufferedEvents:]
	}
	s.snap.UpdatedAt = time.Now().UTC()
	s.snap.LastError = ""
}

func (s *Store) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LastError = err.Error()
	s.snap.UpdatedAt = time.Now().UTC()
}
