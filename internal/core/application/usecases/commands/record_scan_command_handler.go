package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/order"
)

// RecordScanCommandHandler credits one physical unit against the order's
// checklist. The scan event, the checklist update and, when the last line
// verifies, the auto-advance to ReadyForDelivery all commit atomically, so
// two packers racing on the same item cannot double-count a unit.
type RecordScanCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordScanCommandHandler creates a handler for packing scans.
func NewRecordScanCommandHandler(uowFactory OrderUoWFactory) RecordScanCommandHandler {
	return RecordScanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one scan and returns its outcome. A rejected scan, an
// unknown code or an over-scan leaves order state untouched.
func (h RecordScanCommandHandler) Handle(ctx context.Context, command RecordScanCommand) (order.ScanResult, error) {
	if err := command.Validate(); err != nil {
		return order.ScanResult{}, err
	}
	if err := command.By().Can(actor.OperationRecordScan); err != nil {
		return order.ScanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.ScanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return order.ScanResult{}, err
	}

	now := time.Now()
	result, err := aggregate.RecordScan(command.Code(), command.By().ID(), now)
	if err != nil {
		return order.ScanResult{}, err
	}

	if err = uow.OrderRepository().AddScanEvent(ctx, result.Event); err != nil {
		return order.ScanResult{}, err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return order.ScanResult{}, err
	}

	if result.AllVerified {
		message, msgErr := newStateChangedMessage(aggregate, now)
		if msgErr != nil {
			return order.ScanResult{}, msgErr
		}
		if msgErr = uow.OutboxRepository().Add(ctx, message); msgErr != nil {
			return order.ScanResult{}, msgErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return order.ScanResult{}, err
	}

	return result, nil
}
