package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/services"
)

// ConfirmOrderCommandHandler runs the confirmation protocol in one transaction:
//  1. lock the order row and check it is a non-empty draft
//  2. lock the inventory rows of its products in ascending product id order
//  3. check every line, collecting all shortfalls
//  4. deduct stock, confirm the order and write its status event to the outbox
//
// Any failure rolls the whole transaction back, so no partial deduction is ever committed.
// A retry after ConcurrencyConflict or Timeout repeats every step from scratch.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
	logger     *slog.Logger
}

// NewConfirmOrderCommandHandler creates the confirmation handler.
//
// Parameters:
//   - uowFactory: Creates the unit of work spanning the order, its stock rows and the outbox
//   - logger: Receives one record per confirmed order
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory, logger)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//
//	err := handler.Handle(ctx, cmd)
//	var shortage *inventory.InsufficientStockError
//	if errors.As(err, &shortage) {
//	    // shortage.Shortfalls lists every product that is short
//	}
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
		logger:     logger.With("component", "confirm_order_handler"),
	}
}

// Handle locks the order, then the stock rows of its products in id order, and deducts
// every requested quantity or none of them.
//
// Returns:
//   - nil once the order, the deductions and the outbox message are committed
//   - order.ErrEmptyOrder for an order without items
//   - order.ErrInvalidState unless the order is a draft
//   - *inventory.InsufficientStockError listing every shortfall
//   - errs.ErrConcurrencyConflict or errs.ErrTimeout, both safe to retry
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
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
	inventoryRepo := uow.InventoryRepository()

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// Fail before touching inventory locks.
	if err = o.ValidateConfirm(); err != nil {
		return err
	}

	stocks, err := inventoryRepo.GetForUpdate(ctx, o.ProductIDs())
	if err != nil {
		return err
	}

	if err = h.lifecycle.Confirm(o, stocks); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, stocks...); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order confirmed",
		"order_id", o.ID().String(), "order_number", o.Number().String(), "total", o.TotalAmount().String())
	return nil
}
