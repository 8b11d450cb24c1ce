package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemStatusOrderRepo struct{ mock.Mock }

func (m *MockItemStatusOrderRepo) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *MockItemStatusOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockItemStatusOrderRepo) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockItemStatusOrderRepo) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockItemStatusOrderRepo) GetOpenByRestaurant(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockItemStatusOrderRepo) GetByRestaurantBetween(
	_ context.Context, _ kernel.UUID, _, _ time.Time,
) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockItemStatusUoW struct{ mock.Mock }

func (m *MockItemStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockItemStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockItemStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockItemStatusUoWFactory struct{ mock.Mock }

func (m *MockItemStatusUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestUpdateItemStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := existingOrder(t, restaurantID, order.Pending, order.ItemPending)
	itemID := aggregate.Items()[0].ID()

	cmd, err := commands.NewUpdateItemStatusCommand(itemID, restaurantID, order.ItemReady)
	require.NoError(t, err)

	orderRepo := new(MockItemStatusOrderRepo)
	uow := new(MockItemStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", mock.Anything, itemID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.ItemReady, result.Item.Status())
	assert.Equal(t, order.Ready, result.Order.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateItemStatusCommandHandler_Handle_TerminalItem(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := existingOrder(t, restaurantID, order.Delivered, order.ItemDelivered)
	itemID := aggregate.Items()[0].ID()

	cmd, err := commands.NewUpdateItemStatusCommand(itemID, restaurantID, order.ItemPreparing)
	require.NoError(t, err)

	orderRepo := new(MockItemStatusOrderRepo)
	uow := new(MockItemStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", mock.Anything, itemID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestUpdateItemStatusCommandHandler_Handle_ForeignItem(t *testing.T) {
	ctx := t.Context()
	aggregate := existingOrder(t, kernel.NewUUID(), order.Pending, order.ItemPending)
	itemID := aggregate.Items()[0].ID()

	cmd, err := commands.NewUpdateItemStatusCommand(itemID, kernel.NewUUID(), order.ItemReady)
	require.NoError(t, err)

	orderRepo := new(MockItemStatusOrderRepo)
	uow := new(MockItemStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", mock.Anything, itemID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateItemStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd, err := commands.NewUpdateItemStatusCommand(itemID, kernel.NewUUID(), order.ItemReady)
	require.NoError(t, err)

	orderRepo := new(MockItemStatusOrderRepo)
	uow := new(MockItemStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", mock.Anything, itemID).
			Return(nil, errs.NewObjectNotFoundError("orderItemId", itemID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
