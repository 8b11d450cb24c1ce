package commands

import (
	"context"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
)

// snapshotItems resolves order lines against the restaurant's menu and builds
// pending order items carrying a snapshot of each menu item's name, category
// and price. Menu items of other restaurants are treated as not found, and
// unavailable items are rejected as invalid input.
func snapshotItems(
	ctx context.Context,
	menuRepo ports.MenuRepository,
	restaurantID kernel.UUID,
	lines []OrderLine,
) ([]*order.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID())
	}

	menuItems, err := menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*menu.MenuItem, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID()] = menuItem
	}

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		menuItem, ok := byID[line.MenuItemID()]
		if !ok || !menuItem.RestaurantID().IsEqual(restaurantID) {
			return nil, errs.NewObjectNotFoundError("menuItemId", line.MenuItemID().String())
		}

		if !menuItem.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("menu item %q is not available", menuItem.Name()))
		}

		item, err := order.NewItem(
			line.ItemID(),
			menuItem.ID(),
			menuItem.Name(),
			menuItem.Category(),
			menuItem.Price(),
			line.Quantity(),
			line.Notes(),
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
