package commands

import (
	"context"

	"sales/internal/core/domain/services"
)

// UpdateOrderItemCommandHandler changes the quantity of a line on a draft order.
type UpdateOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

// NewUpdateOrderItemCommandHandler creates a handler that runs each change in its own unit of work.
func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

// Handle changes the item quantity; the unit price snapshot is kept.
func (h UpdateOrderItemCommandHandler) Handle(ctx context.Context, command UpdateOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = h.lifecycle.EnsureMutable(o, "update item"); err != nil {
		return err
	}

	if err = o.UpdateItemQuantity(command.ItemID(), command.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
