package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CloseCollectionCommandHandler completes a confirmed collection. For cash
// collections the hand-over to the office appends the balancing delivered
// entry to the messenger's ledger, bringing that order's cash to zero.
type CloseCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewCloseCollectionCommandHandler creates a handler for collection close-out.
func NewCloseCollectionCommandHandler(uowFactory CollectionUoWFactory) CloseCollectionCommandHandler {
	return CloseCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close-out command.
func (h CloseCollectionCommandHandler) Handle(ctx context.Context, command CloseCollectionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.By().Can(actor.OperationCloseCollection); err != nil {
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

	if err = payment.Close(); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, payment); err != nil {
		return err
	}

	if payment.IsCash() {
		messengerID := payment.ReceivedBy()
		if messengerID == nil {
			return errs.NewPreconditionNotMetError("cash payment has no collecting messenger")
		}

		entry, entryErr := cod.NewLedgerEntry(
			kernel.NewUUID(),
			*messengerID,
			payment.OrderID(),
			cod.EntryDelivered,
			payment.AmountReceived(),
			time.Now(),
		)
		if entryErr != nil {
			return entryErr
		}
		if entryErr = uow.LedgerRepository().Add(ctx, entry); entryErr != nil {
			return entryErr
		}
	}

	return uow.Commit(ctx)
}
