package dto

import (
	"time"

	"github.com/google/uuid"
)

type AiMessageRequest struct {
	SessionId uuid.UUID              `json:"session_id" validate:"required"`
	TenantId  string                 `json:"tenant_id" validate:"required"`
	UserId    string                 `json:"user_id" validate:"required"`
	Role      string                 `json:"role" validate:"required"`
	Content   string                 `json:"content" validate:"required"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
}

type AiMessageItem struct {
	MessageId uuid.UUID              `json:"message_id"`
	SessionId uuid.UUID              `json:"session_id"`
	TenantId  string                 `json:"tenant_id"`
	UserId    string                 `json:"user_id"`
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Meta      map[string]interface{} `json:"meta"`
	CreatedAt time.Time              `json:"created_at"`
}

// AiMessageResponse flattens the stored item next to the outcome; a nil
// item leaves only is_invalid and message in the body.
type AiMessageResponse struct {
	ItemBase
	*AiMessageItem
}

type AiMessageListResponse struct {
	ItemBase
	SessionId uuid.UUID        `json:"session_id"`
	Items     []*AiMessageItem `json:"items"`
	Total     int64            `json:"total"`
}

type AiMessageModel struct {
	ModelBase
	Request  *AiMessageRequest
	Response *AiMessageResponse
}
