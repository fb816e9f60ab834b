// Package memory provides the default in-process session store. State lives
// for the process lifetime at most; expired sessions are dropped lazily on
// access.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Mamlesh45/Myntra-Clone/internal/domain"
	apperrors "github.com/Mamlesh45/Myntra-Clone/pkg/errors"
)

type entry struct {
	session   *domain.Session
	expiresAt time.Time
}

// SessionRepository implements repository.SessionRepository with an in-memory
// map. Stored sessions are deep-copied on the way in and out so a caller's
// in-flight mutation is never observable through the store.
type SessionRepository struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]entry
}

// NewSessionRepository creates an in-memory session repository with the given TTL.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		ttl: ttl,
		m:   make(map[string]entry),
	}
}

// Get retrieves a session by ID, dropping it if the TTL has lapsed.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	e, ok := r.m[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NotFound("session", sessionID)
	}

	if time.Now().After(e.expiresAt) {
		r.mu.Lock()
		// Re-check under the write lock; another goroutine may have saved a
		// fresh session in the meantime.
		if cur, ok := r.m[sessionID]; ok && time.Now().After(cur.expiresAt) {
			delete(r.m, sessionID)
		}
		r.mu.Unlock()
		return nil, apperrors.NotFound("session", sessionID)
	}

	return clone(e.session), nil
}

// Save stores a copy of the session and resets its TTL.
func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[session.ID] = entry{
		session:   clone(session),
		expiresAt: time.Now().Add(r.ttl),
	}
	return nil
}

// Delete removes a session by ID.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, sessionID)
	return nil
}

// clone deep-copies a session, including both store slices and the overlay's
// detail product.
func clone(s *domain.Session) *domain.Session {
	out := *s
	out.Cart.Lines = slices.Clone(s.Cart.Lines)
	out.Wishlist.Entries = slices.Clone(s.Wishlist.Entries)
	if s.Overlay.Detail != nil {
		detail := *s.Overlay.Detail
		out.Overlay.Detail = &detail
	}
	return &out
}
