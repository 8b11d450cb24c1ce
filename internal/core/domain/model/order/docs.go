// Package order contains the Order aggregate root and its Item entities.
//
// The aggregate owns the three non-trivial rules of the ordering domain:
//
//   - Status derivation: an order's status is never set directly by callers;
//     it is recomputed from the statuses of its items after every item change
//     (DeriveStatus).
//
//   - Batch tracking: items added together share a batch number; batch 1 is
//     the initial placement and every later AddItems call gets
//     max(existing)+1.
//
//   - Reopen policy: adding items to a DELIVERED order moves it to REOPENED;
//     adding items to a CANCELLED order is rejected; any other status is left
//     untouched while the new items start at PENDING.
//
// Totals are derived too: Total() is always the live sum of price x quantity
// over non-cancelled items.
package order
