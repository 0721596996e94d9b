package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AiMessage maps conv.ai_message. The table name comes from the naming
// strategy so the schema prefix stays configurable.
type AiMessage struct {
	MessageId uuid.UUID         `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID         `gorm:"type:uuid;not null;index"`
	TenantId  string            `gorm:"type:text;not null"`
	UserId    string            `gorm:"type:text;not null"`
	Role      string            `gorm:"type:text;not null;check:role IN ('system','user','assistant','tool')"`
	Content   string            `gorm:"type:text;not null"`
	Meta      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time         `gorm:"not null;autoCreateTime"`
}

// BeforeCreate issues the id in the application so the insert does not
// depend on pgcrypto and works on SQLite.
func (m *AiMessage) BeforeCreate(tx *gorm.DB) error {
	if m.MessageId == uuid.Nil {
		m.MessageId = uuid.New()
	}
	if m.Meta == nil {
		m.Meta = datatypes.JSONMap{}
	}
	return nil
}
