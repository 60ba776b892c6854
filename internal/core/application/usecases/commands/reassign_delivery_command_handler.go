package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ReassignDeliveryCommandHandler replaces the current assignee of an
// out-for-delivery order. The old assignment record is superseded, never
// deleted, and a COD payment that has not been collected yet follows the
// order to the new messenger.
type ReassignDeliveryCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewReassignDeliveryCommandHandler creates a handler for delivery reassignment.
func NewReassignDeliveryCommandHandler(uowFactory AssignUoWFactory) ReassignDeliveryCommandHandler {
	return ReassignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment command.
func (h ReassignDeliveryCommandHandler) Handle(ctx context.Context, command ReassignDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.By().Can(actor.OperationReassignDelivery); err != nil {
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

	if err = h.rebind(ctx, uow, aggregate, command); err != nil {
		return err
	}

	now := time.Now()

	active, err := uow.AssignmentRepository().GetActiveByOrder(ctx, aggregate.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if active != nil {
		if err = active.Supersede(now); err != nil {
			return err
		}
		if err = uow.AssignmentRepository().Update(ctx, active); err != nil {
			return err
		}
	}

	record, err := assignment.NewAssignment(
		kernel.NewUUID(),
		aggregate.ID(),
		command.Kind(),
		command.AssigneeID(),
		command.By().ID(),
		now,
	)
	if err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	if command.Kind() == assignment.AssigneeMessenger && aggregate.IsCOD() {
		payment, paymentErr := uow.PaymentRepository().GetByOrder(ctx, aggregate.ID())
		if paymentErr != nil {
			return paymentErr
		}
		if paymentErr = payment.EnsureReassignable(); paymentErr != nil {
			return paymentErr
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// rebind validates the replacement assignee and applies it to the order.
func (h ReassignDeliveryCommandHandler) rebind(
	ctx context.Context,
	uow AssignUoW,
	aggregate *order.Order,
	command ReassignDeliveryCommand,
) error {
	switch command.Kind() {
	case assignment.AssigneeCarrier:
		assignee, err := uow.CarrierRepository().Get(ctx, command.AssigneeID())
		if err != nil {
			return err
		}
		if !assignee.IsActive() {
			return errs.ErrInactiveAssignee
		}
		return aggregate.ReassignCarrier(command.AssigneeID())

	case assignment.AssigneeMessenger:
		assignee, err := uow.MessengerRepository().Get(ctx, command.AssigneeID())
		if err != nil {
			return err
		}
		if !assignee.IsActive() {
			return errs.ErrInactiveAssignee
		}
		return aggregate.ReassignMessenger(command.AssigneeID())
	}

	return errs.NewValueIsInvalidError("assignee kind")
}
