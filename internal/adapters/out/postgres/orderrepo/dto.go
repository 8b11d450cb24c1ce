// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The derived status and total are stored denormalized so reporting queries
// never have to re-run the derivation.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	TableID      uuid.UUID `gorm:"type:uuid;index"`
	Status       int       `gorm:"index"`
	CustomerNote string
	TotalCents   int64
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
	Items        []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line. Name, category and price are the
// snapshot taken from the menu item at order time.
type ItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Category     string
	PriceCents   int64
	Quantity     int
	Status       int
	AddedInBatch int
	Notes        string
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// including one row per item.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      aggregate.ID().Bytes(),
			MenuItemID:   item.MenuItemID().Bytes(),
			Name:         item.Name(),
			Category:     item.Category(),
			PriceCents:   item.Price().Cents(),
			Quantity:     item.Quantity(),
			Status:       int(item.Status()),
			AddedInBatch: item.AddedInBatch(),
			Notes:        item.Notes(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		TableID:      aggregate.TableID().Bytes(),
		Status:       int(aggregate.Status()),
		CustomerNote: aggregate.CustomerNote(),
		TotalCents:   aggregate.Total().Cents(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		tableID,
		order.Status(dto.Status),
		dto.CustomerNote,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		menuItemID,
		dto.Name,
		dto.Category,
		price,
		dto.Quantity,
		order.ItemStatus(dto.Status),
		dto.AddedInBatch,
		dto.Notes,
	)
}
