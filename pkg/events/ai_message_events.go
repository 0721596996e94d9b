package events

import (
	"time"

	"github.com/google/uuid"
)

const TypeAiMessageCreated = "AI_MESSAGE_CREATED"

// NewAiMessageCreated describes a committed message. Content is left out so
// subscribers fetch it from the store when they need it.
func NewAiMessageCreated(messageId, sessionId uuid.UUID, tenantId, userId, role string, createdAt time.Time) Event {
	return BaseEvent{
		Type: TypeAiMessageCreated,
		Data: map[string]interface{}{
			"message_id": messageId.String(),
			"session_id": sessionId.String(),
			"tenant_id":  tenantId,
			"user_id":    userId,
			"role":       role,
			"created_at": createdAt.UTC().Format(time.RFC3339Nano),
		},
		OccurredAt: time.Now(),
	}
}
