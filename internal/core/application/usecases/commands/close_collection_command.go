package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCloseCollectionCommandIsNotConstructed = errors.New(
	"CloseCollectionCommand must be created via NewCloseCollectionCommand constructor",
)

// CloseCollectionCommand represents the wallet role closing a confirmed
// collection after the cash reached the office.
type CloseCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewCloseCollectionCommand creates a close-out request.
func NewCloseCollectionCommand(orderID kernel.UUID, by actor.Actor) (CloseCollectionCommand, error) {
	command := CloseCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		by.Validate(),
	); err != nil {
		return CloseCollectionCommand{}, err
	}

	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseCollectionCommand) Validate() error {
	return c.guard.Validate(ErrCloseCollectionCommandIsNotConstructed)
}

// OrderID returns the order whose collection is closed.
func (c CloseCollectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting wallet user.
func (c CloseCollectionCommand) By() actor.Actor {
	return c.by
}

func (c *CloseCollectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
