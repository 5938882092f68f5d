package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"
)

// OrderNumberSequence issues order numbers from an atomic per-day counter.
// Numbers of one day are unique and strictly sequential among committed transactions;
// a rolled back transaction releases its value.
type OrderNumberSequence interface {
	Next(ctx context.Context, day time.Time) (order.Number, error)
}
