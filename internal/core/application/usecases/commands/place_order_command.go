package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new table-side order.
// Carries the table, an optional customer note and at least one order line.
//
// Example:
//
//	line, _ := NewOrderLine(kernel.NewUUID(), menuItemID, 2, "no onions")
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), restaurantID, tableID, "birthday", []OrderLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	tableID      kernel.UUID
	customerNote string
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that all ids are valid and at least one valid line is present.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	tableID kernel.UUID,
	customerNote string,
	lines []OrderLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customerNote: customerNote,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setTableID(tableID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the caller-generated identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the authenticated restaurant's identifier.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// TableID returns the table the order is placed from.
func (c PlaceOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// CustomerNote returns the optional free-text note for the whole order.
func (c PlaceOrderCommand) CustomerNote() string {
	return c.customerNote
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tableID = id
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
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
