package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// RegisterOrderCommandHandler persists a newly handed-over order in Created
// status and enqueues the first state notification.
type RegisterOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRegisterOrderCommandHandler creates a handler for order registration.
func NewRegisterOrderCommandHandler(uowFactory OrderUoWFactory) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Builds the order aggregate from
// the request lines and stores it together with its outbox message in one
// transaction.
func (h RegisterOrderCommandHandler) Handle(ctx context.Context, command RegisterOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.By().Can(actor.OperationRegisterOrder); err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(command.Items()))
	for _, input := range command.Items() {
		item, err := order.NewItem(kernel.NewUUID(), input.ProductCode, input.Barcode, input.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		command.OrderID(),
		command.Number(),
		command.DeliveryMethod(),
		command.PaymentMethod(),
		command.TotalAmount(),
		items,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	message, err := newStateChangedMessage(aggregate, time.Now())
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
