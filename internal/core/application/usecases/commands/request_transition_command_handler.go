package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// RequestTransitionCommandHandler applies explicit status transitions. The
// aggregate enforces legality; the handler adds the cross-aggregate rules
// that a single order row cannot see: the COD payment gate on final
// delivery, and assignment and payment cleanup on cancellation.
type RequestTransitionCommandHandler struct {
	uowFactory TransitionUoWFactory
}

// NewRequestTransitionCommandHandler creates a handler for transition requests.
func NewRequestTransitionCommandHandler(uowFactory TransitionUoWFactory) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a transition request. Statuses owned by other flows,
// such as ReadyForDelivery and OutForDelivery, are rejected as invalid
// targets regardless of the order's current status.
func (h RequestTransitionCommandHandler) Handle(ctx context.Context, command RequestTransitionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	operation := actor.OperationRequestTransition
	if command.Target() == order.StatusCancelled {
		operation = actor.OperationCancelOrder
	}
	if err := command.By().Can(operation); err != nil {
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

	switch command.Target() {
	case order.StatusPaymentUnderReview:
		err = aggregate.BeginPaymentReview()
	case order.StatusReadyToPack:
		err = aggregate.BeginPacking()
	case order.StatusDeliveredToCarrier:
		err = aggregate.DeliverToCarrier()
	case order.StatusDeliveredToCustomer:
		err = h.deliverToCustomer(ctx, uow, aggregate)
	case order.StatusCancelled:
		err = h.cancel(ctx, uow, aggregate)
	default:
		err = errs.NewInvalidTransitionError(aggregate.Status().String(), command.Target().String())
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
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

// deliverToCustomer enforces the contraentrega gate: a COD order may only
// close once its payment reconciliation reached Completed.
func (h RequestTransitionCommandHandler) deliverToCustomer(
	ctx context.Context,
	uow TransitionUoW,
	aggregate *order.Order,
) error {
	if aggregate.IsCOD() {
		payment, err := uow.PaymentRepository().GetByOrder(ctx, aggregate.ID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.ErrPaymentNotReconciled
		}
		if err != nil {
			return err
		}
		if !payment.IsCompleted() {
			return errs.ErrPaymentNotReconciled
		}
	}

	return aggregate.DeliverToCustomer()
}

// cancel moves the order to Cancelled, supersedes the active assignment if
// one exists, and voids an unfinished COD payment. Scan history stays.
func (h RequestTransitionCommandHandler) cancel(
	ctx context.Context,
	uow TransitionUoW,
	aggregate *order.Order,
) error {
	if err := aggregate.Cancel(); err != nil {
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

	if !aggregate.IsCOD() {
		return nil
	}

	payment, err := uow.PaymentRepository().GetByOrder(ctx, aggregate.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	// A completed payment is already settled into the office and stays on
	// the books even when the order is cancelled afterwards.
	if payment.IsCompleted() {
		return nil
	}

	if err = payment.Void(); err != nil {
		return err
	}
	return uow.PaymentRepository().Update(ctx, payment)
}
