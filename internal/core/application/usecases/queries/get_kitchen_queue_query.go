package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
)

// GetKitchenQueueQuery retrieves the live kitchen work queue for a
// restaurant: every open order with its items grouped by batch, prioritized
// and sorted for the kitchen display.
//
// Example:
//
//	query, err := NewGetKitchenQueueQuery(restaurantID, order.StatusUnknown, "desserts")
//	if err != nil {
//	    return err
//	}
//
//	queue, err := handler.Handle(ctx, query)
//	fmt.Printf("%d active orders\n", queue.Summary.ActiveOrders)
type GetKitchenQueueQuery struct {
	restaurantID kernel.UUID
	status       order.Status
	category     string

	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a kitchen queue query. Both filters are
// optional: StatusUnknown means all statuses, an empty category means all
// categories.
func NewGetKitchenQueueQuery(
	restaurantID kernel.UUID,
	status order.Status,
	category string,
) (GetKitchenQueueQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetKitchenQueueQuery{}, err
	}

	if status != order.StatusUnknown {
		if err := status.Validate(); err != nil {
			return GetKitchenQueueQuery{}, err
		}
	}

	return GetKitchenQueueQuery{
		restaurantID: restaurantID,
		status:       status,
		category:     category,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose queue is requested.
func (q GetKitchenQueueQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Status returns the optional order status filter; StatusUnknown means none.
func (q GetKitchenQueueQuery) Status() order.Status {
	return q.status
}

// Category returns the optional category filter.
func (q GetKitchenQueueQuery) Category() string {
	return q.category
}
