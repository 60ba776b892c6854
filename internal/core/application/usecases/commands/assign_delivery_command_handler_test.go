package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/messenger"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func activeMessenger(t *testing.T, id kernel.UUID) *messenger.Messenger {
	t.Helper()
	m, err := messenger.RestoreMessenger(id, "Julian", "chapinero", true)
	require.NoError(t, err)
	return m
}

func TestAssignDeliveryCommandHandler_Handle_MessengerCODSuccess(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.StatusReadyForDelivery,
		order.LocalMessenger, order.CashOnDelivery, nil, nil)
	messengerID := kernel.NewUUID()

	by := testActor(t, actor.RoleDispatcher)
	cmd, err := commands.NewAssignDeliveryCommand(
		aggregate.ID(), assignment.AssigneeMessenger, messengerID, by)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	messengers := new(MockMessengerRepository)
	assignments := new(MockAssignmentRepository)
	payments := new(MockPaymentRepository)
	messages := new(MockOutboxRepository)
	uow := new(MockAssignUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MessengerRepository").Return(messengers).Once(),
		messengers.On("Get", mock.Anything, messengerID).
			Return(activeMessenger(t, messengerID), nil).Once(),
		uow.On("AssignmentRepository").Return(assignments).Once(),
		assignments.On("Add", mock.Anything, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Add", mock.Anything, mock.AnythingOfType("*cod.Payment")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OutboxRepository").Return(messages).Once(),
		messages.On("Add", mock.Anything, mock.AnythingOfType("*outbox.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusOutForDelivery, aggregate.Status())
	require.NotNil(t, aggregate.MessengerID())
	assert.Equal(t, messengerID, *aggregate.MessengerID())
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_VersionConflictMeansAlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.StatusReadyForDelivery,
		order.LocalMessenger, order.CashOnDelivery, nil, nil)
	messengerID := kernel.NewUUID()

	by := testActor(t, actor.RoleDispatcher)
	cmd, err := commands.NewAssignDeliveryCommand(
		aggregate.ID(), assignment.AssigneeMessenger, messengerID, by)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	messengers := new(MockMessengerRepository)
	assignments := new(MockAssignmentRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockAssignUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MessengerRepository").Return(messengers).Once(),
		messengers.On("Get", mock.Anything, messengerID).
			Return(activeMessenger(t, messengerID), nil).Once(),
		uow.On("AssignmentRepository").Return(assignments).Once(),
		assignments.On("Add", mock.Anything, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Add", mock.Anything, mock.AnythingOfType("*cod.Payment")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, aggregate).Return(errs.ErrConcurrentConflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAlreadyAssigned)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_InactiveMessenger(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.StatusReadyForDelivery,
		order.LocalMessenger, order.CashOnDelivery, nil, nil)
	messengerID := kernel.NewUUID()
	inactive, err := messenger.RestoreMessenger(messengerID, "Julian", "", false)
	require.NoError(t, err)

	by := testActor(t, actor.RoleDispatcher)
	cmd, err := commands.NewAssignDeliveryCommand(
		aggregate.ID(), assignment.AssigneeMessenger, messengerID, by)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	messengers := new(MockMessengerRepository)
	uow := new(MockAssignUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MessengerRepository").Return(messengers).Once(),
		messengers.On("Get", mock.Anything, messengerID).Return(inactive, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInactiveAssignee)
	assert.Nil(t, aggregate.MessengerID())
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_MethodMismatch(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.StatusReadyForDelivery,
		order.CarrierShipment, order.Prepaid, nil, nil)
	messengerID := kernel.NewUUID()

	by := testActor(t, actor.RoleDispatcher)
	cmd, err := commands.NewAssignDeliveryCommand(
		aggregate.ID(), assignment.AssigneeMessenger, messengerID, by)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	messengers := new(MockMessengerRepository)
	uow := new(MockAssignUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MessengerRepository").Return(messengers).Once(),
		messengers.On("Get", mock.Anything, messengerID).
			Return(activeMessenger(t, messengerID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrMethodMismatch)
	uow.AssertExpectations(t)
}
