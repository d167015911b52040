package commands_test

import (
	"errors"
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	rows := []commands.LineItemInput{
		{Name: "  Monitor ", Price: "199.99", Quantity: "1", ProductID: "507f1f77bcf86cd799439011"},
		{Name: "Cable", Price: "", Quantity: "3"},
		{Name: "Stand", Price: "25", Quantity: "2"},
	}
	cmd, err := commands.NewUpdateOrderCommand(
		aggregate.ID(),
		order.Client{Name: "Riley Chen", Contact: "+1 555 0202", City: "Denver", Address: "9 Oak Ave"},
		order.CashOnDelivery,
		rows,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Riley Chen", aggregate.Client().Name)
	assert.Equal(t, order.CashOnDelivery, aggregate.PaymentMethod())

	products := aggregate.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "Monitor", products[0].Name)
	assert.Equal(t, "507f1f77bcf86cd799439011", products[0].ProductID)
	assert.Zero(t, products[1].Price)
	assert.Equal(t, 3, products[1].Quantity)
	assert.InDelta(t, 249.99, aggregate.TotalPrice(), 0.0001)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ShrinksRowCollection(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	rows := []commands.LineItemInput{{Name: "Keyboard", Price: "49.99", Quantity: "1"}}
	cmd, err := commands.NewUpdateOrderCommand(
		aggregate.ID(), aggregate.Client(), order.Online, rows)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.Products(), 1)
	assert.InDelta(t, 49.99, aggregate.TotalPrice(), 0.0001)
}

func TestUpdateOrderCommandHandler_Handle_BlockedByRowValidation(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	rows := []commands.LineItemInput{{Name: "Keyboard", Price: "49.99", Quantity: ""}}
	cmd, err := commands.NewUpdateOrderCommand(
		aggregate.ID(), aggregate.Client(), order.Online, rows)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, order.IsValidationError(err))
	assert.Len(t, aggregate.Products(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReviewedOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newReviewedOrder(t, order.Confirmed)
	cmd, err := commands.NewUpdateOrderCommand(
		aggregate.ID(), aggregate.Client(), order.Online, validSubmission())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderIsNotEditable)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewUpdateOrderCommand(
		aggregate.ID(), aggregate.Client(), order.Online, validSubmission())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
