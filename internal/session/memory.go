package session

import (
	"sync"

	"github.com/jkimaro/michango-system/internal/model"
)

// MemoryStore keeps the session slot in memory. Used in tests.
type MemoryStore struct {
	mu   sync.Mutex
	user *model.User
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the current session user, or nil when the slot is empty.
func (s *MemoryStore) Get() (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

// Set stores the user in the slot.
func (s *MemoryStore) Set(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *u
	s.user = &copied
	return nil
}

// Clear empties the slot.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return nil
}
