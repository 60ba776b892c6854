// Package messengerrepo persists the in-house messenger registry.
package messengerrepo

import (
	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/messenger"
)

// MessengerDTO represents the database structure for messenger records.
type MessengerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Zone   string `gorm:"index"`
	Active bool   `gorm:"index"`
}

// TableName specifies the database table name for messengers.
func (MessengerDTO) TableName() string {
	return "messengers"
}

func fromDomain(aggregate *messenger.Messenger) MessengerDTO {
	return MessengerDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Zone:   aggregate.Zone(),
		Active: aggregate.IsActive(),
	}
}

func toDomain(dto MessengerDTO) (*messenger.Messenger, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return messenger.RestoreMessenger(id, dto.Name, dto.Zone, dto.Active)
}
