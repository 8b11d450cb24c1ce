// Package tablerepo provides data transfer objects and mapping functions for
// dining table persistence.
package tablerepo

import (
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting dining tables.
// The composite unique index enforces label uniqueness per restaurant.
type TableDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_tables_restaurant_label"`
	Label        string    `gorm:"uniqueIndex:idx_tables_restaurant_label"`
	Active       bool
}

// TableName specifies the database table name for dining table entities.
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(diningTable *table.Table) TableDTO {
	return TableDTO{
		ID:           diningTable.ID().Bytes(),
		RestaurantID: diningTable.RestaurantID().Bytes(),
		Label:        diningTable.Label(),
		Active:       diningTable.IsActive(),
	}
}

// toDomain converts a database DTO to a table domain aggregate.
func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, restaurantID, dto.Label, dto.Active)
}
