package mapper

import (
	"testing"
	"time"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/pkg/apperror"
	"ai-assistant-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAiMessageMapToEntityCopiesEveryField(t *testing.T) {
	m := NewAiMessageMapper()
	req := &dto.AiMessageRequest{
		SessionId: uuid.New(),
		TenantId:  "tenant-1",
		UserId:    "user-1",
		Role:      "assistant",
		Content:   "hi there",
		Meta:      map[string]interface{}{"source": "web"},
	}

	got, err := m.MapToEntity(req, nil)

	require.NoError(t, err)
	assert.Equal(t, req.SessionId, got.SessionId)
	assert.Equal(t, req.TenantId, got.TenantId)
	assert.Equal(t, req.UserId, got.UserId)
	assert.Equal(t, req.Role, got.Role)
	assert.Equal(t, req.Content, got.Content)
	assert.Equal(t, req.Meta, got.Meta)
	assert.Equal(t, uuid.Nil, got.MessageId)
}

func TestAiMessageMapToEntityWritesIntoExisting(t *testing.T) {
	m := NewAiMessageMapper()
	existingId := uuid.New()
	existing := &entity.AiMessage{MessageId: existingId, Content: "old"}

	got, err := m.MapToEntity(&dto.AiMessageRequest{Content: "new"}, existing)

	require.NoError(t, err)
	assert.Same(t, existing, got)
	assert.Equal(t, existingId, got.MessageId)
	assert.Equal(t, "new", got.Content)
}

func TestAiMessageMapToEntityRejectsNil(t *testing.T) {
	got, err := NewAiMessageMapper().MapToEntity(nil, nil)

	assert.Nil(t, got)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindInvalidArgument, appErr.Kind)
}

func TestAiMessageModelRoundTrip(t *testing.T) {
	m := NewAiMessageMapper()
	msg := &entity.AiMessage{
		MessageId: uuid.New(),
		SessionId: uuid.New(),
		TenantId:  "tenant-1",
		UserId:    "user-1",
		Role:      "tool",
		Content:   "result",
		Meta:      map[string]interface{}{"tool": "search"},
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, msg, m.AiMessageToEntity(m.AiMessageToModel(msg)))
}

func TestAiMessageToEntityDefaultsMeta(t *testing.T) {
	m := NewAiMessageMapper()
	got := m.AiMessageToEntity(m.AiMessageToModel(&entity.AiMessage{Content: "x"}))

	assert.NotNil(t, got.Meta)
	assert.Empty(t, got.Meta)
}

func TestPromptMapper(t *testing.T) {
	m := NewPromptMapper()

	_, err := m.MapToEntity(nil, nil)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	p, err := m.MapToEntity(&dto.PromptRequest{Question: "why?", Context: "ctx", SessionId: "s-1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "why?", p.Question)
	assert.Equal(t, "ctx", p.Context)
	assert.Equal(t, "s-1", p.SessionId)

	turn := m.PromptToTurn(p)
	assert.Equal(t, store.RoleUser, turn.Role)
	assert.Equal(t, "why?", turn.Content)

	s := store.NewSession("s-1")
	s.Append(turn)
	history := m.SessionToHistory(s)
	assert.Equal(t, "s-1", history.SessionId)
	require.Len(t, history.Turns, 1)
	assert.Equal(t, "ctx", history.Turns[0].Context)
	assert.False(t, history.IsInvalid)
}
