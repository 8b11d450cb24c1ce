package order

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIsCancelled is returned when adding items to a cancelled order.
	ErrOrderIsCancelled = errs.NewConflictError("cannot add items to a cancelled order")

	// ErrNoItems is returned when a placement or AddItems call carries no items.
	ErrNoItems = errs.NewValueIsRequiredError("at least one order item")
)

// Order is the aggregate root for a table-side order. It exclusively owns its
// items and maintains three derived facts:
//
//   - Total() always equals the sum of price x quantity over non-cancelled
//     items;
//   - Status() is recomputed from the item statuses after every item change;
//   - batch numbers form a sequence starting at 1, one batch per AddItems
//     call.
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	tableID      kernel.UUID

	status       Status
	items        []*Item
	customerNote string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order at initial placement. All items are assigned
// batch 1 and the order starts PENDING.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	tableID kernel.UUID,
	customerNote string,
	items []*Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		customerNote:  customerNote,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setTableID(tableID),
	); err != nil {
		return nil, err
	}

	if err := o.attachItems(items, 1); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	tableID kernel.UUID,
	status Status,
	customerNote string,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		customerNote:  customerNote,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setTableID(tableID),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the owning restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// TableID returns the table the order was placed from.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// Status returns the current derived order status.
func (o *Order) Status() Status {
	return o.status
}

// CustomerNote returns the free text supplied at placement.
func (o *Order) CustomerNote() string {
	return o.customerNote
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the order's items. The slice is owned by the aggregate and
// must not be mutated by callers.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the item with the given id, or an ObjectNotFound error.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

// Total returns the live sum of price x quantity over non-cancelled items.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		if item.Status() == ItemCancelled {
			continue
		}
		total = total.Add(item.LineTotal())
	}
	return total
}

// NextBatch returns the batch number the next AddItems call will use:
// max(existing item batches, default 0) + 1.
func (o *Order) NextBatch() int {
	maxBatch := 0
	for _, item := range o.items {
		if item.AddedInBatch() > maxBatch {
			maxBatch = item.AddedInBatch()
		}
	}
	return maxBatch + 1
}

// AddItems appends a new batch of items to the order and returns the batch
// number assigned to them.
//
// A CANCELLED order rejects the call with no mutation. A DELIVERED order is
// reopened: its status becomes REOPENED and stays there until derivation
// drives it back to DELIVERED. Any other status is left unchanged; the new
// items start at PENDING, so the order holds mixed lifecycle stages by
// design.
func (o *Order) AddItems(items []*Item, now time.Time) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	if len(items) == 0 {
		return 0, ErrNoItems
	}

	if o.status == Cancelled {
		return 0, ErrOrderIsCancelled
	}

	batch := o.NextBatch()
	if err := o.attachItems(items, batch); err != nil {
		return 0, err
	}

	if o.status == Delivered {
		o.status = Reopened
	}

	o.updatedAt = now
	return batch, nil
}

// UpdateItemStatus changes one item's status and rederives the order status
// from the full item set. Returns the updated item.
func (o *Order) UpdateItemStatus(itemID kernel.UUID, newStatus ItemStatus, now time.Time) (*Item, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}

	if err = item.changeStatus(newStatus); err != nil {
		return nil, err
	}

	o.refreshStatus()
	o.updatedAt = now
	return item, nil
}

// refreshStatus recomputes the derived order status from the item set.
func (o *Order) refreshStatus() {
	statuses := make([]ItemStatus, 0, len(o.items))
	for _, item := range o.items {
		statuses = append(statuses, item.Status())
	}
	o.status = DeriveStatus(o.status, statuses)
}

// attachItems validates the given items, assigns them the batch number and
// appends them to the aggregate. On any validation error nothing is attached.
func (o *Order) attachItems(items []*Item, batch int) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	for _, item := range items {
		item.assignBatch(batch)
		o.items = append(o.items, item)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.tableID = id
	return nil
}
