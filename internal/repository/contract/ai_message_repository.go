package contract

import (
	"context"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"
)

type AiMessageRepository interface {
	Create(ctx context.Context, message *entity.AiMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
