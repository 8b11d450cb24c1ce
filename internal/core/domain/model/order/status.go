package order

import (
	"fmt"
	"strings"

	"tableside/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as a whole.
//
// Except for REOPENED (entered only through the AddItems reopen policy) and
// CANCELLED (terminal), the order status is a pure function of the item
// statuses, computed by DeriveStatus.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status at placement.
	Pending

	// Confirmed means every active item has at least been confirmed.
	Confirmed

	// Preparing means the kitchen has started and nothing is still unconfirmed.
	Preparing

	// Ready means every active item is ready or already delivered.
	Ready

	// Delivered means every active item has been delivered.
	Delivered

	// Cancelled is terminal; no further items may be added.
	Cancelled

	// Reopened marks a delivered order that received new items. It decays
	// back to Delivered once every item, old and new, is delivered.
	Reopened
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		Confirmed:     "CONFIRMED",
		Preparing:     "PREPARING",
		Ready:         "READY",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
		Reopened:      "REOPENED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
		Reopened:  "REOPENED",
	}
}

// ParseStatus converts a wire representation to a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate returns an error for StatusUnknown and any other undefined value.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsOpen reports whether the order still belongs on the kitchen queue.
func (s Status) IsOpen() bool {
	return s != Delivered && s != Cancelled
}

// DeriveStatus computes an order status from the multiset of its item
// statuses. It is a pure function: re-running it on an unchanged item set
// yields the same result.
//
// CANCELLED items are excluded from the comparison. If no active items
// remain the whole order is considered CANCELLED. The rules, applied over
// the active items in priority order:
//
//  1. all DELIVERED                               -> Delivered
//  2. current is REOPENED                         -> Reopened
//  3. some READY, rest READY/DELIVERED            -> Ready
//  4. some PREPARING, rest PREPARING or later     -> Preparing
//  5. none still PENDING                          -> Confirmed
//  6. otherwise the current status is kept (covers the PENDING default).
//
// Rule 2 pins a reopened order: it stays REOPENED while its new batch moves
// through the kitchen and leaves only when every item, old and new, has been
// delivered.
func DeriveStatus(current Status, itemStatuses []ItemStatus) Status {
	var (
		active         int
		anyReady       bool
		anyPreparing   bool
		allDelivered   = true
		allReadyOrDone = true
		allStarted     = true
		allConfirmed   = true
	)

	for _, s := range itemStatuses {
		switch s {
		case ItemCancelled:
			continue
		case ItemDelivered:
		case ItemReady:
			anyReady = true
			allDelivered = false
		case ItemPreparing:
			anyPreparing = true
			allDelivered = false
			allReadyOrDone = false
		case ItemConfirmed:
			allDelivered = false
			allReadyOrDone = false
			allStarted = false
		default:
			allDelivered = false
			allReadyOrDone = false
			allStarted = false
			allConfirmed = false
		}
		active++
	}

	switch {
	case active == 0:
		return Cancelled
	case allDelivered:
		return Delivered
	case current == Reopened:
		return Reopened
	case anyReady && allReadyOrDone:
		return Ready
	case anyPreparing && allStarted:
		return Preparing
	case allConfirmed:
		return Confirmed
	default:
		return current
	}
}
