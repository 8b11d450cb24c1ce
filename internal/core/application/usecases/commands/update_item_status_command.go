package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
	"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
)

// UpdateItemStatusCommand represents a request to move one order item to a
// new lifecycle status. The order's own status is rederived as part of the
// same operation.
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	restaurantID kernel.UUID
	status       order.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to update an item's status.
// Validates that both ids and the target status are valid.
func NewUpdateItemStatusCommand(
	itemID kernel.UUID,
	restaurantID kernel.UUID,
	status order.ItemStatus,
) (UpdateItemStatusCommand, error) {
	cmd := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setRestaurantID(restaurantID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// RestaurantID returns the authenticated restaurant's identifier.
func (c UpdateItemStatusCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Status returns the target item status.
func (c UpdateItemStatusCommand) Status() order.ItemStatus {
	return c.status
}

func (c *UpdateItemStatusCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.itemID = id
	return nil
}

func (c *UpdateItemStatusCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *UpdateItemStatusCommand) setStatus(status order.ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
