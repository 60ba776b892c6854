package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordScanCommandIsNotConstructed = errors.New(
	"RecordScanCommand must be created via NewRecordScanCommand constructor",
)

// RecordScanCommand represents one barcode scan at the packing station.
type RecordScanCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewRecordScanCommand creates a scan request. Code is the scanned barcode
// or, for items without one, the internal product code.
func NewRecordScanCommand(orderID kernel.UUID, code string, by actor.Actor) (RecordScanCommand, error) {
	command := RecordScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCode(code),
		by.Validate(),
	); err != nil {
		return RecordScanCommand{}, err
	}

	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordScanCommandIsNotConstructed)
}

// OrderID returns the order being packed.
func (c RecordScanCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the scanned code.
func (c RecordScanCommand) Code() string {
	return c.code
}

// By returns the acting packer.
func (c RecordScanCommand) By() actor.Actor {
	return c.by
}

func (c *RecordScanCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordScanCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
