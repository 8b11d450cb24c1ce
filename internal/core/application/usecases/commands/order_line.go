package commands

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrOrderLineIsNotConstructed = errors.New(
	"OrderLine must be created via NewOrderLine constructor",
)

// OrderLine is one requested line of an order: which menu item, how many,
// and an optional preparation note. The item id is generated by the caller
// so the operation stays idempotent across retries.
//
// Shared by the place-order and add-items commands, which both accept a
// batch of lines.
type OrderLine struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	notes      string

	guard guard.ConstructorGuard
}

// NewOrderLine creates a validated order line.
// Returns an error if either id is invalid or the quantity is not positive.
func NewOrderLine(itemID kernel.UUID, menuItemID kernel.UUID, quantity int, notes string) (OrderLine, error) {
	line := OrderLine{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ItemID returns the caller-generated identifier for the resulting order item.
func (l OrderLine) ItemID() kernel.UUID {
	return l.itemID
}

// MenuItemID returns the identifier of the requested menu item.
func (l OrderLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the requested quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Notes returns the customer's free-text note for this line.
func (l OrderLine) Notes() string {
	return l.notes
}

func (l *OrderLine) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.itemID = id
	return nil
}

func (l *OrderLine) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.menuItemID = id
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	l.quantity = quantity
	return nil
}
