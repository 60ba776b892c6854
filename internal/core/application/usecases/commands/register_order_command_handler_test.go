package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func TestRegisterOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	by := testActor(t, actor.RoleDispatcher)
	cmd, err := commands.NewRegisterOrderCommand(
		kernel.NewUUID(), "FV-1001", "domicilio_local", "contraentrega",
		testMoney(t, 85000), validItems(), by,
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	messages := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(messages).Once(),
		messages.On("Add", mock.Anything, mock.AnythingOfType("*outbox.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orders.AssertExpectations(t)
	messages.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_RoleForbidden(t *testing.T) {
	ctx := t.Context()
	by := testActor(t, actor.RolePacker)
	cmd, err := commands.NewRegisterOrderCommand(
		kernel.NewUUID(), "FV-1001", "transportadora", "prepago",
		testMoney(t, 1000), validItems(), by,
	)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewRegisterOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrOperationNotAllowed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	by := testActor(t, actor.RoleDispatcher)
	cmd, err := commands.NewRegisterOrderCommand(
		kernel.NewUUID(), "FV-1001", "transportadora", "prepago",
		testMoney(t, 1000), validItems(), by,
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}
