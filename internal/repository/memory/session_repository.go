package memory

import (
	"context"
	"time"

	"ai-assistant-be/internal/repository/contract"
	"ai-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository stores copies, so callers never share turn slices.
type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps sessions for ttl and purges expired ones every
// cleanupInterval.
func NewSessionRepository(ttl, cleanupInterval time.Duration) contract.SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (r *SessionRepository) Save(_ context.Context, session *store.Session) error {
	r.cache.Set(session.ID, session.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, sessionID string) (*store.Session, bool, error) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session).Clone(), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}
