package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// MemoryStore keeps action log records in memory, grouped per user in
// append order. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	byUser  map[string][]ActionLogRecord
	userIDs []string
	entropy *ulid.MonotonicEntropy
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byUser:  make(map[string][]ActionLogRecord),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// NewID mints a lexicographically sortable record ID.
func (s *MemoryStore) NewID(at time.Time) string {
	if at.IsZero() {
		at = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), s.entropy).String()
}

// Append stores one record, assigning an ID when the caller left it empty.
func (s *MemoryStore) Append(rec ActionLogRecord) error {
	if rec.ID == "" {
		// NewID takes the lock itself, so mint before locking here.
		rec.ID = s.NewID(rec.LoggedAt)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.byUser[rec.UserID]; !seen {
		s.userIDs = append(s.userIDs, rec.UserID)
	}
	s.byUser[rec.UserID] = append(s.byUser[rec.UserID], rec)
	return nil
}

// ListByUser returns a user's records within the optional time range.
func (s *MemoryStore) ListByUser(userID string, from, to time.Time) ([]ActionLogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ActionLogRecord
	for _, rec := range s.byUser[userID] {
		if inRange(rec.LoggedAt, from, to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Users returns all user IDs in first-seen order.
func (s *MemoryStore) Users() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.userIDs))
	copy(out, s.userIDs)
	return out, nil
}
