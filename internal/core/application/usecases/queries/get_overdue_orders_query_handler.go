package queries

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves open orders that have exceeded the
// age threshold. Used by the background monitor to flag stuck orders.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the overdue orders query. Oldest orders come first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-query.OlderThan())

	overdue := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			table_id,
			status,
			created_at
		FROM orders
		WHERE status NOT IN ? AND created_at < ?
		ORDER BY created_at
	`, []int{int(order.Delivered), int(order.Cancelled)}, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueOrdersQueryResponse
		var id, restaurantID, tableID uuid.UUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&restaurantID,
			&tableID,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if resp.TableID, err = kernel.UUIDFromBytes(tableID[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status)
		resp.AgeMinutes = int(now.Sub(createdAt).Minutes())

		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
