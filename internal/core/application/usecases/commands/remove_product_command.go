package commands

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand deletes a product that no order item references.
type RemoveProductCommand struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewRemoveProductCommand(productID kernel.UUID) (RemoveProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return RemoveProductCommand{}, err
	}
	return RemoveProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

func (c RemoveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// RemoveProductCommandHandler fails with errs.ErrObjectIsReferenced while orders use the product.
type RemoveProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveProductCommandHandler creates a handler backed by the catalog unit of work.
func NewRemoveProductCommandHandler(uowFactory CatalogUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the product. Its inventory row goes with it.
func (h RemoveProductCommandHandler) Handle(ctx context.Context, command RemoveProductCommand) error {
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

	if err := uow.ProductRepository().Delete(ctx, command.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
