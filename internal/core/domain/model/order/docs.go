// Package order provides the Order aggregate of the sales system: a dealer order with
// its line items, derived total and lifecycle status.
//
// The package includes:
//   - Order: the aggregate root owning its items and total
//   - Item: one product line with a price snapshot and derived line total
//   - Status: the state machine Draft -> Confirmed -> Delivered
//   - Number: the human readable order number ORD-YYYYMMDD-NNNN
//   - StatusChanged: the domain event raised on every lifecycle transition
//
// Key business rules:
//   - Items may be added, changed or removed only while the order is a draft
//   - The total always equals the sum of item line totals and is recomputed on every item mutation
//   - Unit prices are captured when an item is created and never follow later price changes
//   - Status only moves forward, one step at a time; a confirmed or delivered order is frozen
package order
