// Package table contains the Table aggregate: a physical dining table a
// customer orders from. Each table carries the restaurant-scoped label
// printed on its link; labels are unique per restaurant.
package table

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table was not created through
// NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// Table identifies a dining table inside a restaurant.
type Table struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	label        string
	active       bool

	isConstructed bool
}

// NewTable creates an active table.
func NewTable(id kernel.UUID, restaurantID kernel.UUID, label string) (*Table, error) {
	t := &Table{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setRestaurantID(restaurantID),
		t.setLabel(label),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(id kernel.UUID, restaurantID kernel.UUID, label string, active bool) (*Table, error) {
	t, err := NewTable(id, restaurantID, label)
	if err != nil {
		return nil, err
	}

	t.active = active
	return t, nil
}

// Validate ensures the table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// RestaurantID returns the owning restaurant's identifier.
func (t *Table) RestaurantID() kernel.UUID {
	return t.restaurantID
}

// Label returns the human-readable table label, e.g. "12" or "Terrace 3".
func (t *Table) Label() string {
	return t.label
}

// IsActive reports whether the table currently accepts orders.
func (t *Table) IsActive() bool {
	return t.active
}

// Deactivate stops the table from accepting new orders.
func (t *Table) Deactivate() {
	t.active = false
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.restaurantID = id
	return nil
}

func (t *Table) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("table label")
	}
	t.label = label
	return nil
}
