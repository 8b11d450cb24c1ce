// Package queries contains read operations in the CQRS architecture.
// Projection-style handlers read the database directly through GORM; the
// kitchen queue and report handlers load full aggregates through the order
// repository because their domain services need complete item sets. Neither
// path goes through the unit of work used by commands.
package queries

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// restoreOrders runs the given SQL against the orders table, loads the item
// rows of every matched order and restores full aggregates. The query must
// select id, restaurant_id, table_id, status, customer_note, created_at and
// updated_at in that column order.
func restoreOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]*order.Order, error) {
	type orderRow struct {
		id           kernel.UUID
		restaurantID kernel.UUID
		tableID      kernel.UUID
		status       order.Status
		customerNote string
		createdAt    time.Time
		updatedAt    time.Time
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	orderIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var id, restaurantID, tableID uuid.UUID
		var status int
		var row orderRow

		err = rows.Scan(
			&id,
			&restaurantID,
			&tableID,
			&status,
			&row.customerNote,
			&row.createdAt,
			&row.updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if row.id, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.restaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if row.tableID, err = kernel.UUIDFromBytes(tableID[:]); err != nil {
			return nil, err
		}
		row.status = order.Status(status)

		orderRows = append(orderRows, row)
		orderIDs = append(orderIDs, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orderRows) == 0 {
		return []*order.Order{}, nil
	}

	itemsByOrder, err := loadItems(ctx, db, orderIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(orderRows))
	for _, row := range orderRows {
		aggregate, restoreErr := order.RestoreOrder(
			row.id,
			row.restaurantID,
			row.tableID,
			row.status,
			row.customerNote,
			itemsByOrder[row.id],
			row.createdAt,
			row.updatedAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// loadItems fetches the item rows for the given orders, grouped by order id
// and ordered by batch so restored aggregates keep insertion order.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[kernel.UUID][]*order.Item, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			name,
			category,
			price_cents,
			quantity,
			status,
			added_in_batch,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY added_in_batch, id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[kernel.UUID][]*order.Item)

	for rows.Next() {
		var id, orderID, menuItemID uuid.UUID
		var name, category, notes string
		var priceCents int64
		var quantity, status, addedInBatch int

		err = rows.Scan(
			&id,
			&orderID,
			&menuItemID,
			&name,
			&category,
			&priceCents,
			&quantity,
			&status,
			&addedInBatch,
			&notes,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		menuID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoneyFromCents(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.RestoreItem(
			itemID, menuID, name, category, price,
			quantity, order.ItemStatus(status), addedInBatch, notes)
		if itemErr != nil {
			return nil, itemErr
		}

		itemsByOrder[ownerID] = append(itemsByOrder[ownerID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}
