package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes draft orders. Confirmed and delivered orders hold
// deducted stock and published events, so they fail with order.ErrInvalidState.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler that runs each deletion in its own unit of work.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
		logger:     logger.With("component", "delete_order_handler"),
	}
}

// Handle locks the order before checking its status, so a concurrent confirmation either
// completes first and the deletion fails, or waits and finds the order gone.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
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

	if err = h.lifecycle.EnsureMutable(o, "delete"); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order deleted",
		"order_id", o.ID().String(), "order_number", o.Number().String())
	return nil
}
