package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordCollectionCommandIsNotConstructed = errors.New(
	"RecordCollectionCommand must be created via NewRecordCollectionCommand constructor",
)

// RecordCollectionCommand represents a messenger reporting what was
// collected at the customer's door.
type RecordCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  cod.CollectionMethod
	amount  kernel.Money
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewRecordCollectionCommand creates a collection report. The method is
// parsed from its wire name, accepting the legacy Spanish aliases.
func NewRecordCollectionCommand(
	orderID kernel.UUID,
	method string,
	amount kernel.Money,
	by actor.Actor,
) (RecordCollectionCommand, error) {
	command := RecordCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMethod(method),
		by.Validate(),
	); err != nil {
		return RecordCollectionCommand{}, err
	}

	command.amount = amount
	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCollectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordCollectionCommandIsNotConstructed)
}

// OrderID returns the delivered COD order.
func (c RecordCollectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns how the payment was collected.
func (c RecordCollectionCommand) Method() cod.CollectionMethod {
	return c.method
}

// Amount returns the collected amount.
func (c RecordCollectionCommand) Amount() kernel.Money {
	return c.amount
}

// By returns the reporting messenger.
func (c RecordCollectionCommand) By() actor.Actor {
	return c.by
}

func (c *RecordCollectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordCollectionCommand) setMethod(raw string) error {
	method, err := cod.CollectionMethodFromString(raw)
	if err != nil {
		return err
	}

	c.method = method
	return nil
}
