package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/cod"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func TestRecordCollectionCommandHandler_Handle_CashWritesLedger(t *testing.T) {
	ctx := t.Context()
	by := testActor(t, actor.RoleMessenger)
	messengerID := by.ID()
	aggregate := restoreTestOrder(t, order.StatusOutForDelivery,
		order.LocalMessenger, order.CashOnDelivery, nil, &messengerID)

	payment, err := cod.NewPayment(kernel.NewUUID(), aggregate.ID(), testMoney(t, 85000))
	require.NoError(t, err)

	cmd, err := commands.NewRecordCollectionCommand(
		aggregate.ID(), "efectivo", testMoney(t, 85000), by)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	payments := new(MockPaymentRepository)
	ledger := new(MockLedgerRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("GetByOrder", mock.Anything, aggregate.ID()).Return(payment, nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Update", mock.Anything, payment).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledger).Once(),
		ledger.On("Add", mock.Anything, mock.AnythingOfType("*cod.LedgerEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCollectionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, cod.PaymentReceived, payment.Status())
	require.NotNil(t, payment.ReceivedBy())
	assert.Equal(t, messengerID, *payment.ReceivedBy())
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordCollectionCommandHandler_Handle_TransferSkipsLedger(t *testing.T) {
	ctx := t.Context()
	by := testActor(t, actor.RoleMessenger)
	messengerID := by.ID()
	aggregate := restoreTestOrder(t, order.StatusOutForDelivery,
		order.LocalMessenger, order.CashOnDelivery, nil, &messengerID)

	payment, err := cod.NewPayment(kernel.NewUUID(), aggregate.ID(), testMoney(t, 85000))
	require.NoError(t, err)

	cmd, err := commands.NewRecordCollectionCommand(
		aggregate.ID(), "transferencia", testMoney(t, 85000), by)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	payments := new(MockPaymentRepository)
	ledger := new(MockLedgerRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("GetByOrder", mock.Anything, aggregate.ID()).Return(payment, nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Update", mock.Anything, payment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCollectionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	ledger.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRecordCollectionCommandHandler_Handle_WrongMessenger(t *testing.T) {
	ctx := t.Context()
	by := testActor(t, actor.RoleMessenger)
	otherMessengerID := kernel.NewUUID()
	aggregate := restoreTestOrder(t, order.StatusOutForDelivery,
		order.LocalMessenger, order.CashOnDelivery, nil, &otherMessengerID)

	cmd, err := commands.NewRecordCollectionCommand(
		aggregate.ID(), "cash", testMoney(t, 85000), by)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCollectionCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrNotAssignedToMessenger)
	uow.AssertExpectations(t)
}
