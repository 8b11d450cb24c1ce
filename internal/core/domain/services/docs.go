// Package services provides domain services that compute views across whole
// sets of order aggregates:
//
//   - KitchenQueueBuilder turns the open orders of a restaurant into the
//     prioritized, batch-grouped work queue shown to kitchen staff.
//   - ReportAggregator computes the owner's business metrics over a
//     historical date window.
//
// Both services are pure: they take loaded aggregates plus a clock value and
// return value types, leaving all persistence to the query handlers that
// invoke them.
package services
