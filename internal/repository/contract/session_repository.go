package contract

import (
	"context"

	"ai-assistant-be/pkg/store"
)

// SessionRepository keeps prompt conversation history. Entries expire after
// the store's TTL; Get reports false for a missing or expired session.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*store.Session, bool, error)
	Save(ctx context.Context, session *store.Session) error
	Delete(ctx context.Context, sessionID string) error
}
