package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

// UpdateItemStatusResult carries the outcome of an item status update: the
// updated item and the owning order with its freshly derived status.
type UpdateItemStatusResult struct {
	Order *order.Order
	Item  *order.Item
}

// UpdateItemStatusCommandHandler handles item lifecycle updates from the
// kitchen. Loading the order, changing the item and rederiving the order
// status run inside one transaction.
type UpdateItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemStatusCommandHandler creates a handler for item status updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateItemStatusCommandHandler(uowFactory OrderUoWFactory) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item status update. Items of other restaurants are
// treated as not found. An item already in a terminal status rejects the
// update with a conflict.
func (h *UpdateItemStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateItemStatusCommand,
) (UpdateItemStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateItemStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateItemStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return UpdateItemStatusResult{}, err
	}

	if !aggregate.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return UpdateItemStatusResult{}, errs.NewObjectNotFoundError("orderItemId", cmd.ItemID().String())
	}

	item, err := aggregate.UpdateItemStatus(cmd.ItemID(), cmd.Status(), time.Now().UTC())
	if err != nil {
		return UpdateItemStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return UpdateItemStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateItemStatusResult{}, err
	}

	return UpdateItemStatusResult{Order: aggregate, Item: item}, nil
}
