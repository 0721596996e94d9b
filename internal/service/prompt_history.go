package service

import (
	"context"
	"sync"
	"time"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/mapper"
	"ai-assistant-be/internal/pipeline"
	"ai-assistant-be/internal/pkg/apperror"
	"ai-assistant-be/internal/repository/contract"
	"ai-assistant-be/pkg/store"

	"github.com/google/uuid"
)

// promptHistoryWriter is the prompt pipeline's store: it issues the prompt
// and session ids and appends the question to the session's turns.
// Each load-append-save runs under mu so concurrent prompts on one session
// keep every turn.
type promptHistoryWriter struct {
	mu       sync.Mutex
	sessions contract.SessionRepository
	mapper   *mapper.PromptMapper
	now      func() time.Time
}

var _ pipeline.Store[entity.Prompt] = (*promptHistoryWriter)(nil)

func (w *promptHistoryWriter) Create(ctx context.Context, p *entity.Prompt) error {
	if p.SessionId == "" {
		p.SessionId = uuid.NewString()
	}
	p.PromptId = uuid.NewString()
	p.CreatedAt = w.now()

	return w.appendTurn(ctx, p.SessionId, w.mapper.PromptToTurn(p))
}

// appendReply records the model's answer on an existing session.
func (w *promptHistoryWriter) appendReply(ctx context.Context, sessionId, content string) error {
	return w.appendTurn(ctx, sessionId, store.Turn{
		Role:      store.RoleAssistant,
		Content:   content,
		CreatedAt: w.now(),
	})
}

func (w *promptHistoryWriter) appendTurn(ctx context.Context, sessionId string, turn store.Turn) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	session, err := w.load(ctx, sessionId)
	if err != nil {
		return err
	}

	session.Append(turn)
	if err := w.sessions.Save(ctx, session); err != nil {
		return apperror.Storage("session history unavailable", err)
	}
	return nil
}

func (w *promptHistoryWriter) load(ctx context.Context, sessionId string) (*store.Session, error) {
	session, found, err := w.sessions.Get(ctx, sessionId)
	if err != nil {
		return nil, apperror.Storage("session history unavailable", err)
	}
	if !found {
		session = store.NewSession(sessionId)
	}
	return session, nil
}
