package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetByIDs retrieves the menu items with the given identifiers.
	// Missing ids are simply absent from the result; callers decide whether
	// that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)
}
