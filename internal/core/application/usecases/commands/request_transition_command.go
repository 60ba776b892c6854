package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand represents an explicit request to move an order
// to a target status. Packing completion and dispatch are never requested
// this way; those transitions belong to the scanner and the assigner.
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a transition request. The target is
// parsed from its wire name.
func NewRequestTransitionCommand(orderID kernel.UUID, target string, by actor.Actor) (RequestTransitionCommand, error) {
	command := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		by.Validate(),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c RequestTransitionCommand) Target() order.Status {
	return c.target
}

// By returns the acting user.
func (c RequestTransitionCommand) By() actor.Actor {
	return c.by
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setTarget(raw string) error {
	target, err := order.StatusFromString(raw)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}
