package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// OrderItemInput is one line of a registration request. Barcode may be empty
// for items scanned by their internal product code.
type OrderItemInput struct {
	ProductCode string
	Barcode     string
	Quantity    int
}

// RegisterOrderCommand represents a request to register an order handed over
// by the external ordering pipeline. The engine assumes payment capture and
// pricing already happened upstream.
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	number         string
	deliveryMethod order.DeliveryMethod
	paymentMethod  order.PaymentMethod
	totalAmount    kernel.Money
	items          []OrderItemInput
	by             actor.Actor

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a new order.
// Delivery and payment methods accept the legacy wire aliases.
func NewRegisterOrderCommand(
	orderID kernel.UUID,
	number string,
	deliveryMethod string,
	paymentMethod string,
	totalAmount kernel.Money,
	items []OrderItemInput,
	by actor.Actor,
) (RegisterOrderCommand, error) {
	command := RegisterOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNumber(number),
		command.setDeliveryMethod(deliveryMethod),
		command.setPaymentMethod(paymentMethod),
		command.setItems(items),
		by.Validate(),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	command.totalAmount = totalAmount
	command.by = by
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RegisterOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the business order number.
func (c RegisterOrderCommand) Number() string {
	return c.number
}

// DeliveryMethod returns the parsed fulfillment channel.
func (c RegisterOrderCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

// PaymentMethod returns the parsed payment method.
func (c RegisterOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// TotalAmount returns the amount to collect for COD orders.
func (c RegisterOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// Items returns the registration line items.
func (c RegisterOrderCommand) Items() []OrderItemInput {
	return c.items
}

// By returns the acting user.
func (c RegisterOrderCommand) By() actor.Actor {
	return c.by
}

func (c *RegisterOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterOrderCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}

	c.number = number
	return nil
}

func (c *RegisterOrderCommand) setDeliveryMethod(raw string) error {
	method, err := order.DeliveryMethodFromString(raw)
	if err != nil {
		return err
	}

	c.deliveryMethod = method
	return nil
}

func (c *RegisterOrderCommand) setPaymentMethod(raw string) error {
	method, err := order.PaymentMethodFromString(raw)
	if err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

func (c *RegisterOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.ProductCode == "" && item.Barcode == "" {
			return errs.NewValueIsRequiredError("item code")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("item quantity", item.Quantity, 1, 10000)
		}
	}

	c.items = items
	return nil
}
