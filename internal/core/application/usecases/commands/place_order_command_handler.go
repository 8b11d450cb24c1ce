package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Validates the table, snapshots the requested menu items and creates the
// order in PENDING status with all items in batch 1.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", placed.ID(), placed.Total())
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the created
// aggregate. Tables of other restaurants are treated as not found, and a
// deactivated table rejects placement with a conflict.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	diningTable, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	if !diningTable.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return nil, errs.NewObjectNotFoundError("tableId", cmd.TableID().String())
	}

	if !diningTable.IsActive() {
		return nil, errs.NewConflictError("table is not active")
	}

	items, err := snapshotItems(ctx, uow.MenuRepository(), cmd.RestaurantID(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RestaurantID(),
		cmd.TableID(),
		cmd.CustomerNote(),
		items,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
