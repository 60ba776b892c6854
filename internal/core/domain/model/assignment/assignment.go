// Package assignment defines the append-only DeliveryAssignment record
// binding an order to exactly one carrier or messenger at a point in time.
// Superseding an assignment closes the old record with an end timestamp and
// creates a new one, so the full history stays available for disputes.
package assignment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when using an improperly
// initialized Assignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment",
)

// ErrAlreadySuperseded is returned when superseding an assignment twice.
var ErrAlreadySuperseded = errors.New("assignment is already superseded")

// AssigneeKind discriminates the fulfillment channel of an assignment.
type AssigneeKind int

const (
	// AssigneeUnknown represents an invalid kind.
	AssigneeUnknown AssigneeKind = iota
	// AssigneeCarrier binds the order to an external carrier.
	AssigneeCarrier
	// AssigneeMessenger binds the order to a local messenger.
	AssigneeMessenger
)

func getAssigneeKindStrings() map[AssigneeKind]string {
	return map[AssigneeKind]string{
		AssigneeUnknown:   "unknown",
		AssigneeCarrier:   "carrier",
		AssigneeMessenger: "messenger",
	}
}

// Validate checks that the kind is carrier or messenger.
func (k AssigneeKind) Validate() error {
	if k != AssigneeCarrier && k != AssigneeMessenger {
		return errs.NewValueIsInvalidError("assignee kind")
	}
	return nil
}

// String returns the wire name of the kind.
func (k AssigneeKind) String() string {
	if s, ok := getAssigneeKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Assignment is one historical binding of an order to a carrier or
// messenger. The active assignment of an order is the one without a
// superseded timestamp; at most one may be active at any time.
type Assignment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	kind         AssigneeKind
	assigneeID   kernel.UUID
	assignedBy   kernel.UUID
	assignedAt   time.Time
	supersededAt *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an active assignment record.
func NewAssignment(
	id, orderID kernel.UUID,
	kind AssigneeKind,
	assigneeID, assignedBy kernel.UUID,
	assignedAt time.Time,
) (*Assignment, error) {
	return RestoreAssignment(id, orderID, kind, assigneeID, assignedBy, assignedAt, nil)
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, orderID kernel.UUID,
	kind AssigneeKind,
	assigneeID, assignedBy kernel.UUID,
	assignedAt time.Time,
	supersededAt *time.Time,
) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := assigneeID.Validate(); err != nil {
		return nil, err
	}
	if err := assignedBy.Validate(); err != nil {
		return nil, err
	}

	return &Assignment{
		id:           id,
		orderID:      orderID,
		kind:         kind,
		assigneeID:   assigneeID,
		assignedBy:   assignedBy,
		assignedAt:   assignedAt.UTC(),
		supersededAt: supersededAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the bound order.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// Kind returns whether the assignee is a carrier or a messenger.
func (a *Assignment) Kind() AssigneeKind {
	return a.kind
}

// AssigneeID returns the bound carrier or messenger.
func (a *Assignment) AssigneeID() kernel.UUID {
	return a.assigneeID
}

// AssignedBy returns the dispatcher that created the binding.
func (a *Assignment) AssignedBy() kernel.UUID {
	return a.assignedBy
}

// AssignedAt returns the UTC creation timestamp.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// SupersededAt returns the end timestamp, or nil while active.
func (a *Assignment) SupersededAt() *time.Time {
	return a.supersededAt
}

// IsActive reports whether the assignment has not been superseded.
func (a *Assignment) IsActive() bool {
	return a.supersededAt == nil
}

// Supersede closes the assignment with an end timestamp. The record itself
// is kept forever.
func (a *Assignment) Supersede(at time.Time) error {
	if a.supersededAt != nil {
		return ErrAlreadySuperseded
	}
	utc := at.UTC()
	a.supersededAt = &utc
	return nil
}
