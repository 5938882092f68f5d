// Package services provides domain services that orchestrate business operations
// across multiple aggregates of the sales system.
//
// The package includes:
//   - OrderLifecycle: the single authority for order mutability and for the
//     draft -> confirmed -> delivered transitions, including stock deduction
//
// Domain services hold no state and perform no I/O. Callers load the aggregates,
// lock them inside a unit of work and persist the result.
package services
