package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrBuildChecklistCommandIsNotConstructed = errors.New(
	"BuildChecklistCommand must be created via NewBuildChecklistCommand constructor",
)

// BuildChecklistCommand represents a request to materialize the packing
// checklist of an order entering the packing station.
type BuildChecklistCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewBuildChecklistCommand creates a checklist build request.
func NewBuildChecklistCommand(orderID kernel.UUID, by actor.Actor) (BuildChecklistCommand, error) {
	command := BuildChecklistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		by.Validate(),
	); err != nil {
		return BuildChecklistCommand{}, err
	}

	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BuildChecklistCommand) Validate() error {
	return c.guard.Validate(ErrBuildChecklistCommandIsNotConstructed)
}

// OrderID returns the order to build the checklist for.
func (c BuildChecklistCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting user.
func (c BuildChecklistCommand) By() actor.Actor {
	return c.by
}

func (c *BuildChecklistCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
