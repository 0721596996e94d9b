package service

import (
	"context"
	"fmt"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/mapper"
	"ai-assistant-be/internal/pipeline"
	"ai-assistant-be/internal/pkg/apperror"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/internal/validation"
	"ai-assistant-be/pkg/events"

	"github.com/google/uuid"
)

const (
	aiMessageModule = "AiMessageService"

	defaultSessionPageSize = 50
	maxSessionPageSize     = 200
)

type IAiMessageService interface {
	Create(ctx context.Context, req *dto.AiMessageRequest) *dto.AiMessageResponse
	Mock(req *dto.AiMessageRequest) *dto.AiMessageResponse
	GetById(ctx context.Context, messageId uuid.UUID) *dto.AiMessageResponse
	GetBySession(ctx context.Context, sessionId uuid.UUID, limit, offset int) *dto.AiMessageListResponse
}

type aiMessageService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	mapper     *mapper.AiMessageMapper
	pipeline   *pipeline.Pipeline[dto.AiMessageRequest, entity.AiMessage]
	logger     logger.ILogger
}

func NewAiMessageService(
	uowFactory unitofwork.RepositoryFactory,
	publisher events.Publisher,
	log logger.ILogger,
) IAiMessageService {
	m := mapper.NewAiMessageMapper()
	return &aiMessageService{
		uowFactory: uowFactory,
		publisher:  publisher,
		mapper:     m,
		pipeline: pipeline.New[dto.AiMessageRequest, entity.AiMessage](
			aiMessageModule,
			validation.NewAiMessageValidation(),
			m,
			&transactionalMessageStore{uowFactory: uowFactory},
			log,
		),
		logger: log,
	}
}

func (s *aiMessageService) Create(ctx context.Context, req *dto.AiMessageRequest) *dto.AiMessageResponse {
	model := &dto.AiMessageModel{Request: req, Response: &dto.AiMessageResponse{}}

	result := s.pipeline.Run(ctx, req)
	if result.Rejected() {
		model.SetInvalid(result.Rejection.Public())
		model.Response.SetInvalid(model.Message)
		return model.Response
	}

	model.Response.AiMessageItem = s.mapper.AiMessageToItem(result.Entity)
	s.publishCreated(ctx, result.Entity)

	return model.Response
}

// Mock answers without validating, storing or publishing anything.
func (s *aiMessageService) Mock(req *dto.AiMessageRequest) (res *dto.AiMessageResponse) {
	res = &dto.AiMessageResponse{}
	defer func() {
		if r := recover(); r != nil {
			res.SetInvalid(fmt.Sprint(r))
		}
	}()

	model := &dto.AiMessageModel{Request: req, Response: res}
	return model.Response
}

func (s *aiMessageService) GetById(ctx context.Context, messageId uuid.UUID) *dto.AiMessageResponse {
	res := &dto.AiMessageResponse{}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	msg, err := uow.AiMessageRepository().FindOne(ctx, specification.ByMessageID{MessageID: messageId})
	if err != nil {
		s.logger.Error(aiMessageModule, "Failed to read message", map[string]interface{}{
			"message_id": messageId.String(),
			"error":      err.Error(),
		})
		res.SetInvalid(readFailure(err).Public())
		return res
	}
	if msg == nil {
		res.SetInvalid(apperror.NotFound("message not found").Public())
		return res
	}

	res.AiMessageItem = s.mapper.AiMessageToItem(msg)
	return res
}

// GetBySession lists a session's messages oldest first.
func (s *aiMessageService) GetBySession(ctx context.Context, sessionId uuid.UUID, limit, offset int) *dto.AiMessageListResponse {
	res := &dto.AiMessageListResponse{
		SessionId: sessionId,
		Items:     []*dto.AiMessageItem{},
	}

	if limit < 0 || offset < 0 {
		res.SetInvalid(apperror.InvalidArgument("limit and offset must not be negative").Public())
		return res
	}
	if limit == 0 {
		limit = defaultSessionPageSize
	}
	if limit > maxSessionPageSize {
		limit = maxSessionPageSize
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AiMessageRepository()
	bySession := specification.BySessionID{SessionID: sessionId}

	total, err := repo.Count(ctx, bySession)
	if err != nil {
		s.logReadFailure(sessionId, err)
		res.SetInvalid(readFailure(err).Public())
		return res
	}

	msgs, err := repo.FindAll(ctx,
		bySession,
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "message_id"},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		s.logReadFailure(sessionId, err)
		res.SetInvalid(readFailure(err).Public())
		return res
	}

	res.Items = s.mapper.AiMessagesToItems(msgs)
	res.Total = total
	return res
}

func (s *aiMessageService) logReadFailure(sessionId uuid.UUID, err error) {
	s.logger.Error(aiMessageModule, "Failed to list session messages", map[string]interface{}{
		"session_id": sessionId.String(),
		"error":      err.Error(),
	})
}

// publishCreated runs after commit, so a failed publish is only logged.
func (s *aiMessageService) publishCreated(ctx context.Context, msg *entity.AiMessage) {
	if s.publisher == nil {
		return
	}

	event := events.NewAiMessageCreated(msg.MessageId, msg.SessionId, msg.TenantId, msg.UserId, msg.Role, msg.CreatedAt)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn(aiMessageModule, "Failed to publish message event", map[string]interface{}{
			"message_id": msg.MessageId.String(),
			"error":      err.Error(),
		})
	}
}

// readFailure keeps classified storage errors and hides anything else.
func readFailure(err error) *apperror.Error {
	if appErr, ok := apperror.As(err); ok {
		return appErr
	}
	return apperror.Internal(err)
}
