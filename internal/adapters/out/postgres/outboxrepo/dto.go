// Package outboxrepo persists transactional outbox messages.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/outbox"
)

// MessageDTO represents one outbox row. A NULL published_at marks a message
// the dispatch job still has to drain.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic       string
	Key         string
	Payload     []byte
	CreatedAt   time.Time  `gorm:"column:created_at;index"`
	PublishedAt *time.Time `gorm:"column:published_at;index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(message *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          message.ID().Bytes(),
		Topic:       message.Topic(),
		Key:         message.Key(),
		Payload:     message.Payload(),
		CreatedAt:   message.CreatedAt(),
		PublishedAt: message.PublishedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, dto.Topic, dto.Key, dto.Payload, dto.CreatedAt, dto.PublishedAt)
}
