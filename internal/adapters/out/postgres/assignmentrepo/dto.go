// Package assignmentrepo persists the append-only delivery assignment
// history.
package assignmentrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
)

// AssignmentDTO represents one historical order-to-assignee binding. A NULL
// superseded_at marks the active record.
type AssignmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Kind         string
	AssigneeID   uuid.UUID  `gorm:"type:uuid"`
	AssignedBy   uuid.UUID  `gorm:"type:uuid"`
	AssignedAt   time.Time  `gorm:"column:assigned_at"`
	SupersededAt *time.Time `gorm:"column:superseded_at"`
}

// TableName specifies the database table name for assignment records.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		Kind:         aggregate.Kind().String(),
		AssigneeID:   aggregate.AssigneeID().Bytes(),
		AssignedBy:   aggregate.AssignedBy().Bytes(),
		AssignedAt:   aggregate.AssignedAt(),
		SupersededAt: aggregate.SupersededAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	assigneeID, err := kernel.UUIDFromBytes(dto.AssigneeID[:])
	if err != nil {
		return nil, err
	}
	assignedBy, err := kernel.UUIDFromBytes(dto.AssignedBy[:])
	if err != nil {
		return nil, err
	}

	var kind assignment.AssigneeKind
	switch dto.Kind {
	case assignment.AssigneeCarrier.String():
		kind = assignment.AssigneeCarrier
	case assignment.AssigneeMessenger.String():
		kind = assignment.AssigneeMessenger
	}

	return assignment.RestoreAssignment(id, orderID, kind, assigneeID, assignedBy,
		dto.AssignedAt, dto.SupersededAt)
}
