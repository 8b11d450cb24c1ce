package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var ErrAddItemsCommandIsNotConstructed = errors.New(
	"AddItemsCommand must be created via NewAddItemsCommand constructor",
)

// AddItemsCommand represents a request to add a new batch of items to an
// existing order. A delivered order is reopened by this operation.
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewAddItemsCommand creates a command to add items to an order.
// Validates that both ids are valid and at least one valid line is present.
func NewAddItemsCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	lines []OrderLine,
) (AddItemsCommand, error) {
	cmd := AddItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
	); err != nil {
		return AddItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the authenticated restaurant's identifier.
func (c AddItemsCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested order lines.
func (c AddItemsCommand) Lines() []OrderLine {
	return c.lines
}

func (c *AddItemsCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AddItemsCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *AddItemsCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return order.ErrNoItems
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
