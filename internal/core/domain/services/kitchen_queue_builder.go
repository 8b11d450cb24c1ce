package services

import (
	"sort"
	"strings"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// urgentAgeMinutes is the age beyond which a waiting order is flagged urgent.
const urgentAgeMinutes = 30

// Batch display labels: batch 1 is the original placement, every later batch
// arrived through an add-items call.
const (
	BatchLabelOriginal    = "original"
	BatchLabelNewAddition = "new addition"
)

// Priority ranks an order on the kitchen queue.
type Priority int

const (
	PriorityNormal Priority = iota + 1

	// PriorityUrgent marks orders waiting longer than urgentAgeMinutes.
	PriorityUrgent

	// PriorityHigh marks reopened orders: the table already ate and is
	// waiting on an addition.
	PriorityHigh
)

// String implements fmt.Stringer.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	case PriorityNormal:
		return "NORMAL"
	default:
		return "UNKNOWN"
	}
}

// QueueItem is one actionable line on the kitchen queue.
type QueueItem struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Status   order.ItemStatus
	Notes    string
}

// QueueBatch groups the active items that were added together.
type QueueBatch struct {
	Number int
	Label  string
	Items  []QueueItem
}

// QueueOrder is one order on the kitchen queue with its work counters.
type QueueOrder struct {
	OrderID      kernel.UUID
	TableID      kernel.UUID
	Status       order.Status
	CustomerNote string
	CreatedAt    time.Time

	AgeMinutes int
	Priority   Priority

	TotalItems        int
	PendingCount      int
	PreparingCount    int
	ReadyCount        int
	CompletionPercent float64

	Batches []QueueBatch
}

// QueueSummary carries the aggregate counters shown above the queue.
type QueueSummary struct {
	ActiveOrders   int
	ActiveItems    int
	PendingItems   int
	PreparingItems int
	ReadyItems     int
	UrgentOrders   int
	ReopenedOrders int
}

// KitchenQueue is the full live view: prioritized orders plus summary.
type KitchenQueue struct {
	Orders  []QueueOrder
	Summary QueueSummary
}

// KitchenQueueBuilder builds the live kitchen view from open orders.
//
// The builder is a read-time computation only: it never mutates the orders it
// is given, and dropping a fully-ready order from the view does not change
// that order's persisted status. Because item updates can land between the
// read and the render, an order may briefly look complete here before its
// derived status catches up; the next poll resolves it.
type KitchenQueueBuilder struct{}

// NewKitchenQueueBuilder creates a new KitchenQueueBuilder instance.
func NewKitchenQueueBuilder() KitchenQueueBuilder {
	return KitchenQueueBuilder{}
}

// Build computes the queue for the given open orders.
//
// statusFilter, when not StatusUnknown, keeps only orders currently in that
// status. categoryFilter, when non-empty, keeps only items of that category
// (case-insensitive) and drops orders left with no matching item. Items
// already DELIVERED or CANCELLED are excluded from the active view. Orders
// whose active items are all READY vanish from the queue. Remaining orders
// are sorted REOPENED first, then oldest first.
func (b KitchenQueueBuilder) Build(
	orders []*order.Order,
	statusFilter order.Status,
	categoryFilter string,
	now time.Time,
) KitchenQueue {
	queue := KitchenQueue{Orders: make([]QueueOrder, 0, len(orders))}

	for _, o := range orders {
		if !o.Status().IsOpen() {
			continue
		}
		if statusFilter != order.StatusUnknown && o.Status() != statusFilter {
			continue
		}

		entry, keep := b.buildOrder(o, categoryFilter, now)
		if !keep {
			continue
		}

		queue.Orders = append(queue.Orders, entry)

		queue.Summary.ActiveOrders++
		queue.Summary.ActiveItems += entry.TotalItems
		queue.Summary.PendingItems += entry.PendingCount
		queue.Summary.PreparingItems += entry.PreparingCount
		queue.Summary.ReadyItems += entry.ReadyCount
		if entry.Priority == PriorityUrgent {
			queue.Summary.UrgentOrders++
		}
		if entry.Status == order.Reopened {
			queue.Summary.ReopenedOrders++
		}
	}

	sort.SliceStable(queue.Orders, func(i, j int) bool {
		a, b := queue.Orders[i], queue.Orders[j]
		aReopened := a.Status == order.Reopened
		bReopened := b.Status == order.Reopened
		if aReopened != bReopened {
			return aReopened
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	return queue
}

// buildOrder computes one queue entry. keep is false when the order should
// not appear: no item matched the category filter, or all active items are
// ready.
func (b KitchenQueueBuilder) buildOrder(o *order.Order, categoryFilter string, now time.Time) (QueueOrder, bool) {
	matched := make([]*order.Item, 0, len(o.Items()))
	for _, item := range o.Items() {
		if categoryFilter != "" && !strings.EqualFold(item.Category(), categoryFilter) {
			continue
		}
		matched = append(matched, item)
	}

	if categoryFilter != "" && len(matched) == 0 {
		return QueueOrder{}, false
	}

	entry := QueueOrder{
		OrderID:      o.ID(),
		TableID:      o.TableID(),
		Status:       o.Status(),
		CustomerNote: o.CustomerNote(),
		CreatedAt:    o.CreatedAt(),
		AgeMinutes:   int(now.Sub(o.CreatedAt()).Minutes()),
	}

	byBatch := make(map[int][]QueueItem)
	for _, item := range matched {
		switch item.Status() {
		case order.ItemDelivered, order.ItemCancelled:
			// historically complete, not actionable
			continue
		case order.ItemPreparing:
			entry.PreparingCount++
		case order.ItemReady:
			entry.ReadyCount++
		default:
			entry.PendingCount++
		}

		entry.TotalItems++
		byBatch[item.AddedInBatch()] = append(byBatch[item.AddedInBatch()], QueueItem{
			ID:       item.ID(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Status:   item.Status(),
			Notes:    item.Notes(),
		})
	}

	if entry.TotalItems > 0 {
		entry.CompletionPercent = float64(entry.ReadyCount) / float64(entry.TotalItems) * 100
		if entry.ReadyCount == entry.TotalItems {
			// everything is plated; the order leaves the live queue
			return QueueOrder{}, false
		}
	}

	batchNumbers := make([]int, 0, len(byBatch))
	for number := range byBatch {
		batchNumbers = append(batchNumbers, number)
	}
	sort.Ints(batchNumbers)

	for _, number := range batchNumbers {
		label := BatchLabelNewAddition
		if number == 1 {
			label = BatchLabelOriginal
		}
		entry.Batches = append(entry.Batches, QueueBatch{
			Number: number,
			Label:  label,
			Items:  byBatch[number],
		})
	}

	switch {
	case entry.Status == order.Reopened:
		entry.Priority = PriorityHigh
	case entry.AgeMinutes > urgentAgeMinutes:
		entry.Priority = PriorityUrgent
	default:
		entry.Priority = PriorityNormal
	}

	return entry, true
}
