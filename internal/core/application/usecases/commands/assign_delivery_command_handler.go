package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AssignDeliveryCommandHandler binds a ready order to a carrier or
// messenger, opens the assignment history record and, for COD messenger
// orders, the pending payment row. Two dispatchers assigning the same
// order race on the order's version; the loser sees AlreadyAssigned.
type AssignDeliveryCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory AssignUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.By().Can(actor.OperationAssignDelivery); err != nil {
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

	if err = h.bind(ctx, uow, aggregate, command); err != nil {
		return err
	}

	now := time.Now()

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
		payment, paymentErr := cod.NewPayment(kernel.NewUUID(), aggregate.ID(), aggregate.TotalAmount())
		if paymentErr != nil {
			return paymentErr
		}
		if paymentErr = uow.PaymentRepository().Add(ctx, payment); paymentErr != nil {
			return paymentErr
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrConcurrentConflict) {
			return errs.ErrAlreadyAssigned
		}
		return err
	}

	message, err := newStateChangedMessage(aggregate, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// bind validates the assignee against its registry and applies the binding
// to the order aggregate.
func (h AssignDeliveryCommandHandler) bind(
	ctx context.Context,
	uow AssignUoW,
	aggregate *order.Order,
	command AssignDeliveryCommand,
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
		return aggregate.AssignCarrier(command.AssigneeID())

	case assignment.AssigneeMessenger:
		assignee, err := uow.MessengerRepository().Get(ctx, command.AssigneeID())
		if err != nil {
			return err
		}
		if !assignee.IsActive() {
			return errs.ErrInactiveAssignee
		}
		return aggregate.AssignMessenger(command.AssigneeID())
	}

	return errs.NewValueIsInvalidError("assignee kind")
}
