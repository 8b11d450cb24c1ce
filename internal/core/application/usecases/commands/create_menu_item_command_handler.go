package commands

import (
	"context"

	"tableside/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles menu item creation.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
// Requires a MenuUoWFactory for transactional persistence.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command and returns the created
// aggregate.
func (h *CreateMenuItemCommandHandler) Handle(
	ctx context.Context, cmd CreateMenuItemCommand,
) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	menuItem, err := menu.NewMenuItem(
		cmd.MenuItemID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Category(),
		cmd.Price(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, menuItem); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return menuItem, nil
}
