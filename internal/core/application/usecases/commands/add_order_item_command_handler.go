package commands

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
)

// AddOrderItemCommandHandler adds a line to a draft order with a snapshot of the
// product's current price and saves the recomputed total in the same transaction.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

// NewAddOrderItemCommandHandler creates a handler that runs each addition in its own unit of work.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

// Handle returns the id of the new item.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, command AddOrderItemCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.lifecycle.EnsureMutable(o, "add item"); err != nil {
		return kernel.UUID{}, err
	}

	if err = validateQuantity(command.Quantity()); err != nil {
		return kernel.UUID{}, err
	}

	p, err := uow.ProductRepository().Get(ctx, command.ProductID())
	if err != nil {
		return kernel.UUID{}, err
	}

	item, err := o.AddItem(p.ID(), command.Quantity(), p.Price())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return item.ID(), nil
}

// validateQuantity runs before any catalog lookup, so a bad quantity on a draft is reported
// as such rather than as a missing product.
func validateQuantity(quantity int) error {
	if quantity < order.MinItemQuantity {
		return &order.InvalidQuantityError{Quantity: quantity}
	}
	return nil
}
