package commands

import (
	"context"
)

// ChangeProductPriceCommandHandler updates the catalog price. Lines already on orders keep
// the price they were added with.
type ChangeProductPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeProductPriceCommandHandler creates a handler backed by the catalog unit of work.
func NewChangeProductPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound for an unknown product.
func (h ChangeProductPriceCommandHandler) Handle(ctx context.Context, command ChangeProductPriceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, command.ProductID())
	if err != nil {
		return err
	}

	if err = p.ChangePrice(command.Price()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
