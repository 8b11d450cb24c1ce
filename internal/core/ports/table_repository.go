package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for dining tables.
type TableRepository interface {
	// Add persists a new table. A duplicate label within the same
	// restaurant yields a conflict error.
	Add(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)
}
