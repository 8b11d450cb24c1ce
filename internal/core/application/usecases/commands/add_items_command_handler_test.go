package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAddItemsOrderRepo struct{ mock.Mock }

func (m *MockAddItemsOrderRepo) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *MockAddItemsOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockAddItemsOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockAddItemsOrderRepo) GetByItemID(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAddItemsOrderRepo) GetOpenByRestaurant(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAddItemsOrderRepo) GetByRestaurantBetween(
	_ context.Context, _ kernel.UUID, _, _ time.Time,
) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAddItemsMenuRepo struct{ mock.Mock }

func (m *MockAddItemsMenuRepo) Add(_ context.Context, _ *menu.MenuItem) error    { return nil }
func (m *MockAddItemsMenuRepo) Update(_ context.Context, _ *menu.MenuItem) error { return nil }
func (m *MockAddItemsMenuRepo) Get(_ context.Context, _ kernel.UUID) (*menu.MenuItem, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAddItemsMenuRepo) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

type MockAddItemsUoW struct{ mock.Mock }

func (m *MockAddItemsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddItemsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddItemsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddItemsUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAddItemsUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockAddItemsUoWFactory struct{ mock.Mock }

func (m *MockAddItemsUoWFactory) Create() commands.AddItemsUoW {
	args := m.Called()
	return args.Get(0).(commands.AddItemsUoW)
}

func cents(t *testing.T, v int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(v)
	require.NoError(t, err)
	return m
}

func existingOrder(t *testing.T, restaurantID kernel.UUID, status order.Status, itemStatus order.ItemStatus) *order.Order {
	t.Helper()
	item, err := order.RestoreItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", "pizza",
		cents(t, 1000), 1, itemStatus, 1, "")
	require.NoError(t, err)

	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), restaurantID, kernel.NewUUID(), status, "",
		[]*order.Item{item}, now.Add(-10*time.Minute), now)
	require.NoError(t, err)
	return aggregate
}

func TestAddItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := existingOrder(t, restaurantID, order.Preparing, order.ItemPreparing)

	menuItem, err := menu.RestoreMenuItem(
		kernel.NewUUID(), restaurantID, "Tiramisu", "desserts", cents(t, 700), true)
	require.NoError(t, err)

	line, err := commands.NewOrderLine(kernel.NewUUID(), menuItem.ID(), 2, "")
	require.NoError(t, err)
	cmd, err := commands.NewAddItemsCommand(aggregate.ID(), restaurantID, []commands.OrderLine{line})
	require.NoError(t, err)

	orderRepo := new(MockAddItemsOrderRepo)
	menuRepo := new(MockAddItemsMenuRepo)
	uow := new(MockAddItemsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByIDs", mock.Anything, mock.Anything).
			Return([]*menu.MenuItem{menuItem}, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemsCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Batch)
	assert.Equal(t, int64(2400), result.Order.Total().Cents())
	require.Len(t, result.Order.Items(), 2)
	assert.Equal(t, 2, result.Order.Items()[1].AddedInBatch())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemsCommandHandler_Handle_ReopensDeliveredOrder(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := existingOrder(t, restaurantID, order.Delivered, order.ItemDelivered)

	menuItem, err := menu.RestoreMenuItem(
		kernel.NewUUID(), restaurantID, "Espresso", "drinks", cents(t, 300), true)
	require.NoError(t, err)

	line, err := commands.NewOrderLine(kernel.NewUUID(), menuItem.ID(), 1, "")
	require.NoError(t, err)
	cmd, err := commands.NewAddItemsCommand(aggregate.ID(), restaurantID, []commands.OrderLine{line})
	require.NoError(t, err)

	orderRepo := new(MockAddItemsOrderRepo)
	menuRepo := new(MockAddItemsMenuRepo)
	uow := new(MockAddItemsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByIDs", mock.Anything, mock.Anything).
			Return([]*menu.MenuItem{menuItem}, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemsCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Reopened, result.Order.Status())
	assert.Equal(t, 2, result.Batch)
}

func TestAddItemsCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := existingOrder(t, restaurantID, order.Cancelled, order.ItemCancelled)

	menuItem, err := menu.RestoreMenuItem(
		kernel.NewUUID(), restaurantID, "Espresso", "drinks", cents(t, 300), true)
	require.NoError(t, err)

	line, err := commands.NewOrderLine(kernel.NewUUID(), menuItem.ID(), 1, "")
	require.NoError(t, err)
	cmd, err := commands.NewAddItemsCommand(aggregate.ID(), restaurantID, []commands.OrderLine{line})
	require.NoError(t, err)

	orderRepo := new(MockAddItemsOrderRepo)
	menuRepo := new(MockAddItemsMenuRepo)
	uow := new(MockAddItemsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByIDs", mock.Anything, mock.Anything).
			Return([]*menu.MenuItem{menuItem}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	require.Len(t, aggregate.Items(), 1)
	uow.AssertExpectations(t)
}

func TestAddItemsCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := existingOrder(t, kernel.NewUUID(), order.Pending, order.ItemPending)

	line, err := commands.NewOrderLine(kernel.NewUUID(), kernel.NewUUID(), 1, "")
	require.NoError(t, err)
	cmd, err := commands.NewAddItemsCommand(aggregate.ID(), kernel.NewUUID(), []commands.OrderLine{line})
	require.NoError(t, err)

	orderRepo := new(MockAddItemsOrderRepo)
	uow := new(MockAddItemsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
