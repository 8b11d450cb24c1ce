// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence.
package menurepo

import (
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Category     string `gorm:"index"`
	PriceCents   int64
	Available    bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item domain aggregate to its database representation.
func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Category:     item.Category(),
		PriceCents:   item.Price().Cents(),
		Available:    item.IsAvailable(),
	}
}

// toDomain converts a database DTO to a menu item domain aggregate.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, restaurantID, dto.Name, dto.Category, price, dto.Available)
}
