package repository

import (
	"context"

	"github.com/Mamlesh45/Myntra-Clone/internal/domain"
)

// SessionRepository defines the interface for session state storage. Both
// backends are volatile: sessions expire with their TTL and nothing survives
// a restart of the backing store.
type SessionRepository interface {
	// Get retrieves a session by its ID. Returns ErrNotFound if the session
	// does not exist or has expired.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)

	// Save persists a session, overwriting any existing state for its ID and
	// resetting the TTL.
	Save(ctx context.Context, session *domain.Session) error

	// Delete removes a session by its ID.
	Delete(ctx context.Context, sessionID string) error
}
