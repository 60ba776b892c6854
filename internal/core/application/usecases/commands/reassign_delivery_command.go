package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReassignDeliveryCommandIsNotConstructed = errors.New(
	"ReassignDeliveryCommand must be created via NewReassignDeliveryCommand constructor",
)

// ReassignDeliveryCommand represents a request to hand an out-for-delivery
// order to a different carrier or messenger.
type ReassignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	kind       assignment.AssigneeKind
	assigneeID kernel.UUID
	by         actor.Actor

	guard guard.ConstructorGuard
}

// NewReassignDeliveryCommand creates a reassignment request.
func NewReassignDeliveryCommand(
	orderID kernel.UUID,
	kind assignment.AssigneeKind,
	assigneeID kernel.UUID,
	by actor.Actor,
) (ReassignDeliveryCommand, error) {
	command := ReassignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setKind(kind),
		command.setAssigneeID(assigneeID),
		by.Validate(),
	); err != nil {
		return ReassignDeliveryCommand{}, err
	}

	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrReassignDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to reassign.
func (c ReassignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns whether the new assignee is a carrier or a messenger.
func (c ReassignDeliveryCommand) Kind() assignment.AssigneeKind {
	return c.kind
}

// AssigneeID returns the replacement carrier or messenger.
func (c ReassignDeliveryCommand) AssigneeID() kernel.UUID {
	return c.assigneeID
}

// By returns the acting dispatcher.
func (c ReassignDeliveryCommand) By() actor.Actor {
	return c.by
}

func (c *ReassignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignDeliveryCommand) setKind(kind assignment.AssigneeKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *ReassignDeliveryCommand) setAssigneeID(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}

	c.assigneeID = assigneeID
	return nil
}
