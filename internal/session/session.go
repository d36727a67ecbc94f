// Package session implements the single-slot session store holding the
// currently logged-in user. An empty slot means no one is logged in.
package session

import "github.com/jkimaro/michango-system/internal/model"

// Store is the session slot capability injected into the account service.
// Get returns (nil, nil) when the slot is empty; implementations treat
// malformed slot content as empty and clear it.
type Store interface {
	Get() (*model.User, error)
	Set(u *model.User) error
	Clear() error
}
