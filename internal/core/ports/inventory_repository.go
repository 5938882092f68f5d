package ports

import (
	"context"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for per-product stock.
type InventoryRepository interface {
	// Add creates the inventory row of a product.
	Add(ctx context.Context, stock *inventory.Stock) error

	// Get returns the current stock of a product without locking.
	// It fails with errs.ErrObjectNotFound when the product has no inventory row.
	Get(ctx context.Context, productID kernel.UUID) (*inventory.Stock, error)

	// GetForUpdate locks the inventory rows of productIDs in ascending product id order
	// and returns the rows that exist. Concurrent callers that share products therefore
	// always acquire their locks in the same order.
	GetForUpdate(ctx context.Context, productIDs []kernel.UUID) ([]*inventory.Stock, error)

	// Update writes the quantities of stocks previously loaded with GetForUpdate.
	Update(ctx context.Context, stocks ...*inventory.Stock) error
}
