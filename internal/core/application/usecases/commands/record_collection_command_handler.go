package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// RecordCollectionCommandHandler records a messenger's collection on a COD
// order. Cash collections also append a received entry to the messenger's
// ledger, in the same transaction, so the ledger can never disagree with
// the payment rows.
type RecordCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewRecordCollectionCommandHandler creates a handler for collection reports.
func NewRecordCollectionCommandHandler(uowFactory CollectionUoWFactory) RecordCollectionCommandHandler {
	return RecordCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the collection report. Only the messenger currently
// bound to the order may report a collection for it.
func (h RecordCollectionCommandHandler) Handle(ctx context.Context, command RecordCollectionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.By().Can(actor.OperationRecordCollection); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	messengerID := aggregate.MessengerID()
	if messengerID == nil || !messengerID.IsEqual(command.By().ID()) {
		return errs.ErrNotAssignedToMessenger
	}

	payment, err := uow.PaymentRepository().GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = payment.RecordCollection(command.Method(), command.Amount(), command.By().ID()); err != nil {
		return err
	}
	if err = uow.PaymentRepository().Update(ctx, payment); err != nil {
		return err
	}

	if payment.IsCash() {
		entry, entryErr := cod.NewLedgerEntry(
			kernel.NewUUID(),
			command.By().ID(),
			aggregate.ID(),
			cod.EntryReceived,
			command.Amount(),
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
