package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add an item to the
// restaurant's menu. New items start available.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	name         string
	category     string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Validates ids, requires a name and category, and a positive price.
func NewCreateMenuItemCommand(
	menuItemID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	category string,
	price kernel.Money,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the caller-generated identifier for the new menu item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// RestaurantID returns the authenticated restaurant's identifier.
func (c CreateMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the menu item name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Category returns the menu category.
func (c CreateMenuItemCommand) Category() string {
	return c.category
}

// Price returns the menu item price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuItemID = id
	return nil
}

func (c *CreateMenuItemCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsRequiredError("price")
	}

	c.price = price
	return nil
}
