// Package carrierrepo persists the external carrier registry.
package carrierrepo

import (
	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CarrierDTO represents the database structure for carrier records.
type CarrierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Active bool `gorm:"index"`
}

// TableName specifies the database table name for carriers.
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Active: aggregate.IsActive(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, dto.Active)
}
