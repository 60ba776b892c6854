package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/actor"
)

// ConfirmCollectionCommandHandler records the wallet role's acceptance of a
// reported collection. A discrepancy between collected and expected amounts
// is visible to the confirmer but never blocks the confirmation.
type ConfirmCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewConfirmCollectionCommandHandler creates a handler for collection confirmation.
func NewConfirmCollectionCommandHandler(uowFactory CollectionUoWFactory) ConfirmCollectionCommandHandler {
	return ConfirmCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
func (h ConfirmCollectionCommandHandler) Handle(ctx context.Context, command ConfirmCollectionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.By().Can(actor.OperationConfirmCollection); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	payment, err := uow.PaymentRepository().GetByOrder(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = payment.Confirm(command.By().ID()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, payment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
