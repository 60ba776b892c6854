package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a request to bind a ready order to a
// carrier or a local messenger.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	kind       assignment.AssigneeKind
	assigneeID kernel.UUID
	by         actor.Actor

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates an assignment request.
func NewAssignDeliveryCommand(
	orderID kernel.UUID,
	kind assignment.AssigneeKind,
	assigneeID kernel.UUID,
	by actor.Actor,
) (AssignDeliveryCommand, error) {
	command := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setKind(kind),
		command.setAssigneeID(assigneeID),
		by.Validate(),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns whether the assignee is a carrier or a messenger.
func (c AssignDeliveryCommand) Kind() assignment.AssigneeKind {
	return c.kind
}

// AssigneeID returns the carrier or messenger to bind.
func (c AssignDeliveryCommand) AssigneeID() kernel.UUID {
	return c.assigneeID
}

// By returns the acting dispatcher.
func (c AssignDeliveryCommand) By() actor.Actor {
	return c.by
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setKind(kind assignment.AssigneeKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AssignDeliveryCommand) setAssigneeID(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}

	c.assigneeID = assigneeID
	return nil
}
