package mapper

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"
	"ai-assistant-be/internal/pkg/apperror"

	"gorm.io/datatypes"
)

type AiMessageMapper struct{}

func NewAiMessageMapper() *AiMessageMapper {
	return &AiMessageMapper{}
}

// MapToEntity copies the request into existing, or into a new message when
// existing is nil. Fields are copied as-is; nothing is defaulted here.
func (m *AiMessageMapper) MapToEntity(req *dto.AiMessageRequest, existing *entity.AiMessage) (*entity.AiMessage, error) {
	if req == nil {
		return nil, apperror.InvalidArgument("ai message request cannot be nil")
	}
	if existing == nil {
		existing = entity.NewAiMessage()
	}

	existing.SessionId = req.SessionId
	existing.TenantId = req.TenantId
	existing.UserId = req.UserId
	existing.Role = req.Role
	existing.Content = req.Content
	existing.Meta = req.Meta

	return existing, nil
}

func (m *AiMessageMapper) AiMessageToModel(msg *entity.AiMessage) *model.AiMessage {
	if msg == nil {
		return nil
	}

	var meta datatypes.JSONMap
	if msg.Meta != nil {
		meta = datatypes.JSONMap(msg.Meta)
	}

	return &model.AiMessage{
		MessageId: msg.MessageId,
		SessionId: msg.SessionId,
		TenantId:  msg.TenantId,
		UserId:    msg.UserId,
		Role:      msg.Role,
		Content:   msg.Content,
		Meta:      meta,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *AiMessageMapper) AiMessageToEntity(msg *model.AiMessage) *entity.AiMessage {
	if msg == nil {
		return nil
	}

	meta := map[string]interface{}{}
	for k, v := range msg.Meta {
		meta[k] = v
	}

	return &entity.AiMessage{
		MessageId: msg.MessageId,
		SessionId: msg.SessionId,
		TenantId:  msg.TenantId,
		UserId:    msg.UserId,
		Role:      msg.Role,
		Content:   msg.Content,
		Meta:      meta,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *AiMessageMapper) AiMessageToItem(msg *entity.AiMessage) *dto.AiMessageItem {
	if msg == nil {
		return nil
	}
	return &dto.AiMessageItem{
		MessageId: msg.MessageId,
		SessionId: msg.SessionId,
		TenantId:  msg.TenantId,
		UserId:    msg.UserId,
		Role:      msg.Role,
		Content:   msg.Content,
		Meta:      msg.Meta,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *AiMessageMapper) AiMessagesToItems(msgs []*entity.AiMessage) []*dto.AiMessageItem {
	items := make([]*dto.AiMessageItem, len(msgs))
	for i, msg := range msgs {
		items[i] = m.AiMessageToItem(msg)
	}
	return items
}
