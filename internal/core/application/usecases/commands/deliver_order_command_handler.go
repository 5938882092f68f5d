package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/services"
)

// DeliverOrderCommandHandler moves a confirmed order to delivered. It has no stock side effects.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
	logger     *slog.Logger
}

// NewDeliverOrderCommandHandler creates a handler that logs each delivery through logger.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
		logger:     logger.With("component", "deliver_order_handler"),
	}
}

// Handle fails with order.ErrInvalidState unless the order is confirmed.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, command DeliverOrderCommand) error {
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

	if err = h.lifecycle.Deliver(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order delivered",
		"order_id", o.ID().String(), "order_number", o.Number().String())
	return nil
}
