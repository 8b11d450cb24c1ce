package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

// AddItemsResult carries the outcome of an add-items command: the updated
// order aggregate and the batch number assigned to the new items.
type AddItemsResult struct {
	Order *order.Order
	Batch int
}

// AddItemsCommandHandler handles the business logic for adding a batch of
// items to an existing order. The read, the batch assignment and the status
// rederivation all run inside a single transaction, so two waiters extending
// the same order never end up with the same batch number.
type AddItemsCommandHandler struct {
	uowFactory AddItemsUoWFactory
}

// NewAddItemsCommandHandler creates a handler for add-items operations.
// Requires an AddItemsUoWFactory for transactional persistence.
func NewAddItemsCommandHandler(uowFactory AddItemsUoWFactory) AddItemsCommandHandler {
	return AddItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-items command. Orders of other restaurants are
// treated as not found. A cancelled order rejects the call with a conflict;
// a delivered order is reopened.
func (h *AddItemsCommandHandler) Handle(ctx context.Context, cmd AddItemsCommand) (AddItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddItemsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AddItemsResult{}, err
	}

	if !aggregate.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return AddItemsResult{}, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	items, err := snapshotItems(ctx, uow.MenuRepository(), cmd.RestaurantID(), cmd.Lines())
	if err != nil {
		return AddItemsResult{}, err
	}

	batch, err := aggregate.AddItems(items, time.Now().UTC())
	if err != nil {
		return AddItemsResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AddItemsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddItemsResult{}, err
	}

	return AddItemsResult{Order: aggregate, Batch: batch}, nil
}
