package commands

import (
	"context"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/product"
)

// CreateProductCommandHandler stores a product and its inventory row atomically.
// A duplicate SKU fails with errs.ErrValueIsInvalid from the unique index.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler backed by the catalog unit of work.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle inserts the product and its initial stock, or neither.
func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(
		command.ProductID(), command.SKU(), command.Name(), command.Description(), command.Price(),
	)
	if err != nil {
		return err
	}

	stock, err := inventory.NewStock(p.ID(), command.InitialStock())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	if err = uow.InventoryRepository().Add(ctx, stock); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
