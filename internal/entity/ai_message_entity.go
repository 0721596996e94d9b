package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AiMessageRoleSystem    = "system"
	AiMessageRoleUser      = "user"
	AiMessageRoleAssistant = "assistant"
	AiMessageRoleTool      = "tool"
)

// AiMessageRoles lists the roles the store accepts.
var AiMessageRoles = []string{
	AiMessageRoleSystem,
	AiMessageRoleUser,
	AiMessageRoleAssistant,
	AiMessageRoleTool,
}

type AiMessage struct {
	MessageId uuid.UUID
	SessionId uuid.UUID
	TenantId  string
	UserId    string
	Role      string
	Content   string
	Meta      map[string]interface{}
	CreatedAt time.Time
}

// NewAiMessage returns an empty message whose metadata defaults to {}.
func NewAiMessage() *AiMessage {
	return &AiMessage{
		Meta: map[string]interface{}{},
	}
}
