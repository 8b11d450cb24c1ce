package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand represents a request to register a dining table.
// Table labels are unique within a restaurant.
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID      kernel.UUID
	restaurantID kernel.UUID
	label        string

	guard guard.ConstructorGuard
}

// NewCreateTableCommand creates a command to register a table.
// Validates ids and requires a non-empty label.
func NewCreateTableCommand(
	tableID kernel.UUID,
	restaurantID kernel.UUID,
	label string,
) (CreateTableCommand, error) {
	cmd := CreateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLabel(label),
	); err != nil {
		return CreateTableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

// TableID returns the caller-generated identifier for the new table.
func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// RestaurantID returns the authenticated restaurant's identifier.
func (c CreateTableCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Label returns the human-readable table label.
func (c CreateTableCommand) Label() string {
	return c.label
}

func (c *CreateTableCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tableID = id
	return nil
}

func (c *CreateTableCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateTableCommand) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}

	c.label = label
	return nil
}
