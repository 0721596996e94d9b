package service

import (
	"context"
	"fmt"
	"time"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/mapper"
	"ai-assistant-be/internal/pipeline"
	"ai-assistant-be/internal/pkg/apperror"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/contract"
	"ai-assistant-be/internal/validation"
	"ai-assistant-be/pkg/llm"
)

const promptModule = "PromptService"

type IPromptService interface {
	Prompt(ctx context.Context, req *dto.PromptRequest) *dto.PromptResponse
	Mock(req *dto.PromptRequest) *dto.PromptResponse
	GetHistory(ctx context.Context, sessionId string) *dto.SessionHistoryResponse
	ClearHistory(ctx context.Context, sessionId string) *dto.SessionHistoryResponse
}

type promptService struct {
	sessions contract.SessionRepository
	provider llm.LLMProvider
	mapper   *mapper.PromptMapper
	history  *promptHistoryWriter
	pipeline *pipeline.Pipeline[dto.PromptRequest, entity.Prompt]
	logger   logger.ILogger
}

func NewPromptService(
	sessions contract.SessionRepository,
	provider llm.LLMProvider,
	log logger.ILogger,
) IPromptService {
	m := mapper.NewPromptMapper()
	history := &promptHistoryWriter{sessions: sessions, mapper: m, now: time.Now}

	return &promptService{
		sessions: sessions,
		provider: provider,
		mapper:   m,
		history:  history,
		pipeline: pipeline.New[dto.PromptRequest, entity.Prompt](
			promptModule,
			validation.NewPromptValidation(),
			m,
			history,
			log,
		),
		logger: log,
	}
}

func (s *promptService) Prompt(ctx context.Context, req *dto.PromptRequest) *dto.PromptResponse {
	model := &dto.PromptModel{Request: req, Response: &dto.PromptResponse{}}
	res := model.Response

	result := s.pipeline.Run(ctx, req)
	if result.Rejected() {
		model.SetInvalid(result.Rejection.Public())
		res.SetInvalid(model.Message)
		return res
	}

	prompt := result.Entity
	res.PromptId = prompt.PromptId
	res.SessionId = prompt.SessionId

	completion, err := s.invoke(ctx, prompt)
	if err != nil {
		appErr, ok := apperror.As(err)
		if !ok {
			appErr = apperror.Internal(err)
		}
		s.logger.Error(promptModule, "LLM invocation failed", map[string]interface{}{
			"session_id": prompt.SessionId,
			"prompt_id":  prompt.PromptId,
			"error":      err.Error(),
		})
		model.SetInvalid(appErr.Public())
		res.SetInvalid(model.Message)
		return res
	}

	res.Response = completion.Content
	res.ModelName = completion.Model
	res.TokensUsed = completion.TokensUsed

	return res
}

// invoke sends the whole session to the provider and records its reply.
func (s *promptService) invoke(ctx context.Context, prompt *entity.Prompt) (completion *llm.Completion, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	session, err := s.history.load(ctx, prompt.SessionId)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(session.Turns)+1)
	if prompt.Context != "" {
		history = append(history, llm.Message{Role: "system", Content: prompt.Context})
	}
	for _, turn := range session.Turns {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	completion, err = s.provider.Chat(ctx, history, llm.WithTemperature(0))
	if err != nil {
		return nil, err
	}

	if err := s.history.appendReply(ctx, prompt.SessionId, completion.Content); err != nil {
		return nil, err
	}
	return completion, nil
}

// Mock answers without validating or touching the session store.
func (s *promptService) Mock(req *dto.PromptRequest) (res *dto.PromptResponse) {
	res = &dto.PromptResponse{}
	defer func() {
		if r := recover(); r != nil {
			res.SetInvalid(fmt.Sprint(r))
		}
	}()

	model := &dto.PromptModel{Request: req, Response: res}
	return model.Response
}

func (s *promptService) GetHistory(ctx context.Context, sessionId string) *dto.SessionHistoryResponse {
	if sessionId == "" {
		return invalidHistory(sessionId, apperror.InvalidArgument("session_id is absent"))
	}

	session, found, err := s.sessions.Get(ctx, sessionId)
	if err != nil {
		s.logger.Error(promptModule, "Failed to read session history", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return invalidHistory(sessionId, apperror.StorageRead("session history unavailable", err))
	}
	if !found {
		return invalidHistory(sessionId, apperror.NotFound("session not found"))
	}

	return s.mapper.SessionToHistory(session)
}

func (s *promptService) ClearHistory(ctx context.Context, sessionId string) *dto.SessionHistoryResponse {
	if sessionId == "" {
		return invalidHistory(sessionId, apperror.InvalidArgument("session_id is absent"))
	}

	if err := s.sessions.Delete(ctx, sessionId); err != nil {
		s.logger.Error(promptModule, "Failed to clear session history", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return invalidHistory(sessionId, apperror.Internal(err))
	}

	s.logger.Info(promptModule, "Session history cleared", map[string]interface{}{"session_id": sessionId})
	return &dto.SessionHistoryResponse{SessionId: sessionId, Turns: []*dto.SessionTurnDTO{}}
}

func invalidHistory(sessionId string, err *apperror.Error) *dto.SessionHistoryResponse {
	res := &dto.SessionHistoryResponse{SessionId: sessionId, Turns: []*dto.SessionTurnDTO{}}
	res.SetInvalid(err.Public())
	return res
}
