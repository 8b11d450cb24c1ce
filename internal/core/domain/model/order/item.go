package order

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrItemIsTerminal is returned when updating an item that already reached
	// DELIVERED or CANCELLED.
	ErrItemIsTerminal = errs.NewConflictError("item status is terminal and cannot change")
)

// Item is a single line of an order. It belongs to exactly one Order, which
// owns it exclusively; all mutation goes through the aggregate root.
//
// Name, category and price are snapshotted from the menu item at creation
// time, so later menu edits never change what the customer agreed to pay.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID

	// snapshot of the referenced menu item at order time
	name     string
	category string
	price    kernel.Money

	quantity     int
	status       ItemStatus
	addedInBatch int
	notes        string

	isConstructed bool
}

// NewItem creates a pending order item. The batch number is assigned by the
// owning Order when the item is attached (placement or AddItems).
func NewItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	category string,
	price kernel.Money,
	quantity int,
	notes string,
) (*Item, error) {
	item := &Item{
		status:        ItemPending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setCategory(category),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.price = price
	return item, nil
}

// RestoreItem reconstructs an item from persistence, including its status
// and batch number.
func RestoreItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	category string,
	price kernel.Money,
	quantity int,
	status ItemStatus,
	addedInBatch int,
	notes string,
) (*Item, error) {
	item, err := NewItem(id, menuItemID, name, category, price, quantity, notes)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if addedInBatch < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("addedInBatch",
			fmt.Errorf("%d is not a positive batch number", addedInBatch))
	}

	item.status = status
	item.addedInBatch = addedInBatch
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the identifier of the menu item this line references.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name snapshotted at order time.
func (i *Item) Name() string {
	return i.name
}

// Category returns the menu category snapshotted at order time.
func (i *Item) Category() string {
	return i.category
}

// Price returns the unit price snapshotted at order time.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Status returns the item's current lifecycle status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// AddedInBatch returns the batch number the item arrived in (1 = placement).
func (i *Item) AddedInBatch() int {
	return i.addedInBatch
}

// Notes returns the customer's free-text note for this line.
func (i *Item) Notes() string {
	return i.notes
}

// LineTotal returns price x quantity for this line.
func (i *Item) LineTotal() kernel.Money {
	return i.price.MultiplyQuantity(i.quantity)
}

// changeStatus moves the item to a new status. Terminal statuses
// (DELIVERED, CANCELLED) cannot change again.
func (i *Item) changeStatus(newStatus ItemStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if i.status.IsTerminal() {
		return ErrItemIsTerminal
	}

	i.status = newStatus
	return nil
}

// assignBatch is called by the owning Order when the item is attached.
func (i *Item) assignBatch(batch int) {
	i.addedInBatch = batch
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("item category")
	}
	i.category = category
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
