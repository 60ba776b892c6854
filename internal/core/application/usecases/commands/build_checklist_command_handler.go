package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/actor"
)

// BuildChecklistCommandHandler materializes the packing checklist of an
// order. Building twice is a no-op, so packers can safely re-open an order
// at the station.
type BuildChecklistCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBuildChecklistCommandHandler creates a handler for checklist builds.
func NewBuildChecklistCommandHandler(uowFactory OrderUoWFactory) BuildChecklistCommandHandler {
	return BuildChecklistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checklist build command.
func (h BuildChecklistCommandHandler) Handle(ctx context.Context, command BuildChecklistCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.By().Can(actor.OperationBuildChecklist); err != nil {
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

	if err = aggregate.BuildChecklist(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
