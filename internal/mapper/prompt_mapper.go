package mapper

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/pkg/apperror"
	"ai-assistant-be/pkg/store"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) MapToEntity(req *dto.PromptRequest, existing *entity.Prompt) (*entity.Prompt, error) {
	if req == nil {
		return nil, apperror.InvalidArgument("prompt request cannot be nil")
	}
	if existing == nil {
		existing = &entity.Prompt{}
	}

	existing.Question = req.Question
	existing.Context = req.Context
	existing.SessionId = req.SessionId

	return existing, nil
}

func (m *PromptMapper) PromptToTurn(p *entity.Prompt) store.Turn {
	return store.Turn{
		Role:      store.RoleUser,
		Content:   p.Question,
		Context:   p.Context,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PromptMapper) SessionToHistory(s *store.Session) *dto.SessionHistoryResponse {
	res := &dto.SessionHistoryResponse{
		SessionId: s.ID,
		Turns:     make([]*dto.SessionTurnDTO, 0, len(s.Turns)),
	}
	for _, turn := range s.Turns {
		res.Turns = append(res.Turns, &dto.SessionTurnDTO{
			Role:      turn.Role,
			Content:   turn.Content,
			Context:   turn.Context,
			CreatedAt: turn.CreatedAt,
		})
	}
	return res
}
