package ports

import (
	"context"

	"sales/internal/core/domain/model/dealer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error

	// Get loads a product and takes a key-share lock on it, so the product cannot be
	// deleted before the transaction that references it commits.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product and its inventory row. It fails with errs.ErrObjectIsReferenced
	// while order items reference the product.
	Delete(ctx context.Context, id kernel.UUID) error
}

// DealerRepository defines the persistence contract for dealers.
type DealerRepository interface {
	Add(ctx context.Context, d *dealer.Dealer) error

	// Update writes the contact fields. An email already used by another dealer fails
	// with errs.ErrValueIsInvalid.
	Update(ctx context.Context, d *dealer.Dealer) error

	// Get loads a dealer and takes a key-share lock on it.
	Get(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error)

	// Delete fails with errs.ErrObjectIsReferenced while orders reference the dealer.
	Delete(ctx context.Context, id kernel.UUID) error
}
