// Package menu contains the MenuItem aggregate. Menu items are the catalog
// side of ordering: orders snapshot their name, category and price at
// placement, so edits here never alter existing order lines.
package menu

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a dish or drink a restaurant offers.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	category     string
	price        kernel.Money
	available    bool

	isConstructed bool
}

// NewMenuItem creates an available menu item.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	category string,
	price kernel.Money,
) (*MenuItem, error) {
	item := &MenuItem{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	category string,
	price kernel.Money,
	available bool,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, restaurantID, name, category, price)
	if err != nil {
		return nil, err
	}

	item.available = available
	return item, nil
}

// Validate ensures the menu item was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Category returns the menu category, e.g. "Starters".
func (m *MenuItem) Category() string {
	return m.category
}

// Price returns the current price. Orders snapshot it at placement.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// MarkUnavailable takes the item off the orderable menu.
func (m *MenuItem) MarkUnavailable() {
	m.available = false
}

// MarkAvailable puts the item back on the orderable menu.
func (m *MenuItem) MarkAvailable() {
	m.available = true
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("menu item category")
	}
	m.category = category
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsRequiredError("menu item price")
	}
	m.price = price
	return nil
}
