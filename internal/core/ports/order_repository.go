package ports

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read returns the aggregate with its full item set, so status
// derivation always runs against the complete order.
type OrderRepository interface {
	// Add persists a new order aggregate with its batch-1 items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order: status, timestamps,
	// the derived total, changed items and newly added batches.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order aggregate owning the given item.
	// Used by item-status updates, which are addressed by item id.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetOpenByRestaurant retrieves all orders of a restaurant whose status
	// is neither DELIVERED nor CANCELLED, oldest first. Feeds the kitchen
	// queue.
	GetOpenByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetByRestaurantBetween retrieves the orders of a restaurant created in
	// [start, end). Feeds the report aggregator.
	GetByRestaurantBetween(
		ctx context.Context, restaurantID kernel.UUID, start, end time.Time,
	) ([]*order.Order, error)
}
