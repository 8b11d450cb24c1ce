package queries

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order aggregate for display.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := restoreOrders(ctx, h.db, `
		SELECT
			id,
			restaurant_id,
			table_id,
			status,
			customer_note,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND restaurant_id = ?
	`, query.OrderID().Bytes(), query.RestaurantID().Bytes())
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return orders[0], nil
}
