package commands

import (
	"context"
	"log/slog"
	"time"

	"sales/internal/core/domain/model/order"
)

// CreateOrderCommandHandler opens a draft order after checking that the dealer exists.
// The order number comes from the per-day sequence inside the same transaction, so a
// failed creation does not consume a number.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for opening draft orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), dealerID)
//
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(number) // ORD-20250301-0001
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order_handler"),
		now:        time.Now,
	}
}

// Handle creates the order and returns its number.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (order.Number, error) {
	if err := command.Validate(); err != nil {
		return order.Number{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Number{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DealerRepository().Get(ctx, command.DealerID()); err != nil {
		return order.Number{}, err
	}

	createdAt := h.now()
	number, err := uow.OrderNumberSequence().Next(ctx, createdAt)
	if err != nil {
		return order.Number{}, err
	}

	o, err := order.NewOrder(command.OrderID(), number, command.DealerID(), createdAt)
	if err != nil {
		return order.Number{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return order.Number{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Number{}, err
	}

	h.logger.InfoContext(ctx, "Order created",
		"order_id", o.ID().String(), "order_number", number.String(), "dealer_id", o.DealerID().String())
	return number, nil
}
