package commands

import (
	"context"

	"sales/internal/core/domain/services"
)

// RemoveOrderItemCommandHandler deletes a line from a draft order. Removing the last line
// leaves an empty draft, which cannot be confirmed until an item is added again.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

// NewRemoveOrderItemCommandHandler creates a handler that runs each removal in its own unit of work.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

// Handle returns:
//   - order.ErrInvalidState unless the order is a draft
//   - errs.ErrObjectNotFound when the order or the item does not exist
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, command RemoveOrderItemCommand) error {
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

	if err = h.lifecycle.EnsureMutable(o, "remove item"); err != nil {
		return err
	}

	if err = o.RemoveItem(command.ItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
