package implementation

import (
	"context"
	"errors"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/mapper"
	"ai-assistant-be/internal/model"
	"ai-assistant-be/internal/repository/contract"
	"ai-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AiMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AiMessageMapper
}

func NewAiMessageRepository(db *gorm.DB) contract.AiMessageRepository {
	return &AiMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewAiMessageMapper(),
	}
}

func (r *AiMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts a single row and copies the stored id and created_at back
// into message. Failures come back as classified storage errors.
func (r *AiMessageRepositoryImpl) Create(ctx context.Context, message *entity.AiMessage) error {
	m := r.mapper.AiMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return classifyStoreError(err)
	}
	*message = *r.mapper.AiMessageToEntity(m)
	return nil
}

func (r *AiMessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiMessage, error) {
	var m model.AiMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, classifyReadError(err)
	}
	return r.mapper.AiMessageToEntity(&m), nil
}

func (r *AiMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiMessage, error) {
	var models []*model.AiMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, classifyReadError(err)
	}
	entities := make([]*entity.AiMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AiMessageToEntity(m)
	}
	return entities, nil
}

func (r *AiMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AiMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, classifyReadError(err)
	}
	return count, nil
}
