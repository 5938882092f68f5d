// Package kernel provides the shared value objects of the sales domain.
//
// The package includes:
//   - UUID: identifiers for aggregates and entities, with a total order used for
//     deterministic lock acquisition
//   - Money: fixed-point monetary amounts backed by github.com/shopspring/decimal
//
// Both types are immutable; their zero values are invalid and fail Validate.
package kernel
