package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/jkimaro/michango-system/internal/model"
)

// FileStore persists the session slot as a JSON document on disk. Writes go
// through a temporary file and rename so a crash mid-write cannot leave a
// half-written slot behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a session store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the session slot. A missing file means no session; a file that
// cannot be decoded is removed and also treated as no session.
func (s *FileStore) Get() (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var u model.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == "" {
		// Corrupt slot: self-heal by clearing it.
		_ = os.Remove(s.path)
		return nil, nil
	}

	return &u, nil
}

// Set writes the user into the session slot, replacing any previous session.
func (s *FileStore) Set(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	return nil
}

// Clear empties the session slot.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
