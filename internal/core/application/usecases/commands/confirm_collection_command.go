package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmCollectionCommandIsNotConstructed = errors.New(
	"ConfirmCollectionCommand must be created via NewConfirmCollectionCommand constructor",
)

// ConfirmCollectionCommand represents the wallet role accepting a reported
// collection, discrepancies included.
type ConfirmCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewConfirmCollectionCommand creates a confirmation request.
func NewConfirmCollectionCommand(orderID kernel.UUID, by actor.Actor) (ConfirmCollectionCommand, error) {
	command := ConfirmCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		by.Validate(),
	); err != nil {
		return ConfirmCollectionCommand{}, err
	}

	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCollectionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCollectionCommandIsNotConstructed)
}

// OrderID returns the order whose collection is confirmed.
func (c ConfirmCollectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting wallet user.
func (c ConfirmCollectionCommand) By() actor.Actor {
	return c.by
}

func (c *ConfirmCollectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
