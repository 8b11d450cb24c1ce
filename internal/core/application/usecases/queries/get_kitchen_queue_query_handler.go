package queries

import (
	"context"
	"time"

	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
)

// GetKitchenQueueQueryHandler builds the kitchen queue from the open orders
// of a restaurant. The heavy lifting happens in the domain queue builder;
// this handler only loads the aggregates and supplies the clock.
type GetKitchenQueueQueryHandler struct {
	orders  ports.OrderRepository
	builder services.KitchenQueueBuilder
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
// The repository supplies open orders as full aggregates, which the queue
// builder needs for batch grouping and derivation-aware counters.
func NewGetKitchenQueueQueryHandler(orders ports.OrderRepository) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{orders: orders, builder: services.NewKitchenQueueBuilder()}
}

// Handle loads all open orders of the restaurant, oldest first, and runs the
// queue builder over them.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) (services.KitchenQueue, error) {
	if err := query.Validate(); err != nil {
		return services.KitchenQueue{}, err
	}

	open, err := h.orders.GetOpenByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return services.KitchenQueue{}, err
	}

	return h.builder.Build(open, query.Status(), query.Category(), time.Now().UTC()), nil
}
