// Package middleware contains HTTP middleware for the michango service.
package middleware

import (
	"context"
	"net/http"

	"github.com/jkimaro/michango-system/internal/model"
)

type contextKey string

const sessionUserKey contextKey = "sessionUser"

// SessionReader exposes the current session user to the gate.
type SessionReader interface {
	CurrentUser() (*model.User, error)
}

// SessionGate decides between the authenticated and anonymous views: requests
// without a session user are rejected with 401 before reaching the handler.
type SessionGate struct {
	sessions SessionReader
}

// NewSessionGate creates a gate over the given session reader.
func NewSessionGate(sessions SessionReader) *SessionGate {
	return &SessionGate{sessions: sessions}
}

// Middleware loads the session user, rejects anonymous requests and stores
// the user in the request context for downstream handlers.
func (g *SessionGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.sessions.CurrentUser()
		if err != nil || user == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the session user placed by the gate.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(sessionUserKey).(*model.User)
	return u, ok
}
