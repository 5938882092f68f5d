// Package ports defines the contracts between the sales domain and its infrastructure:
// repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored together with their order; domain events raised on the aggregate
// are written to the outbox in the same transaction.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row, upserts its current items and deletes removed ones.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items without locking.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	// Every mutating operation on an order loads it through this method, so status checks
	// and writes cannot interleave with a concurrent call on the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order together with its items.
	Delete(ctx context.Context, id kernel.UUID) error
}
