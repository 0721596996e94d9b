package service

import (
	"context"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/pipeline"
	"ai-assistant-be/internal/pkg/apperror"
	"ai-assistant-be/internal/repository/unitofwork"
)

// transactionalMessageStore wraps each insert in its own unit of work. The
// transaction is rolled back on every path that does not reach Commit,
// panics included.
type transactionalMessageStore struct {
	uowFactory unitofwork.RepositoryFactory
}

var _ pipeline.Store[entity.AiMessage] = (*transactionalMessageStore)(nil)

func (s *transactionalMessageStore) Create(ctx context.Context, msg *entity.AiMessage) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Storage("store unavailable", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback()
		}
	}()

	if err := uow.AiMessageRepository().Create(ctx, msg); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		committed = true
		return apperror.Storage("store operation failed", err)
	}
	committed = true

	return nil
}
