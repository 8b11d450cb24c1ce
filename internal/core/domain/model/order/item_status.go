package order

import (
	"fmt"
	"strings"

	"tableside/internal/pkg/errs"
)

// ItemStatus represents the lifecycle state of a single order item.
// Items progress independently of one another; the order status is derived
// from the full set (see DeriveStatus).
type ItemStatus int

const (
	// ItemStatusUnknown catches uninitialized ItemStatus values.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending is the initial status of every newly added item.
	ItemPending

	// ItemConfirmed means the kitchen has accepted the item.
	ItemConfirmed

	// ItemPreparing means the item is being cooked.
	ItemPreparing

	// ItemReady means the item is plated and waiting to be served.
	ItemReady

	// ItemDelivered is terminal: the item reached the table.
	ItemDelivered

	// ItemCancelled is terminal and excludes the item from totals and
	// status derivation.
	ItemCancelled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "UNKNOWN",
		ItemPending:       "PENDING",
		ItemConfirmed:     "CONFIRMED",
		ItemPreparing:     "PREPARING",
		ItemReady:         "READY",
		ItemDelivered:     "DELIVERED",
		ItemCancelled:     "CANCELLED",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemPending:   "PENDING",
		ItemConfirmed: "CONFIRMED",
		ItemPreparing: "PREPARING",
		ItemReady:     "READY",
		ItemDelivered: "DELIVERED",
		ItemCancelled: "CANCELLED",
	}
}

// ParseItemStatus converts a wire representation to an ItemStatus,
// case-insensitively.
func ParseItemStatus(s string) (ItemStatus, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidItemStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status", fmt.Errorf("%q is not a valid item status", s))
}

// Validate returns an error for ItemStatusUnknown and any other undefined value.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String implements fmt.Stringer; safe on any value.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the item can no longer change status.
func (s ItemStatus) IsTerminal() bool {
	return s == ItemDelivered || s == ItemCancelled
}
