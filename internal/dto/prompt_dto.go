package dto

import "time"

type PromptRequest struct {
	Question  string `json:"question" validate:"required"`
	Context   string `json:"context,omitempty"`
	SessionId string `json:"session_id,omitempty"`
}

type PromptResponse struct {
	ItemBase
	Response   string `json:"response,omitempty"`
	PromptId   string `json:"prompt_id,omitempty"`
	SessionId  string `json:"session_id,omitempty"`
	ModelName  string `json:"model_name,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

type PromptModel struct {
	ModelBase
	Request  *PromptRequest
	Response *PromptResponse
}

type SessionTurnDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionHistoryResponse struct {
	ItemBase
	SessionId string            `json:"session_id"`
	Turns     []*SessionTurnDTO `json:"turns"`
}
