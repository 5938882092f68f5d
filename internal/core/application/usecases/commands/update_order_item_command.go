package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand changes the quantity of a line on a draft order. As with
// AddOrderItemCommand, the quantity is checked after the order status.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemCommand(orderID, itemID kernel.UUID, quantity int) (UpdateOrderItemCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return UpdateOrderItemCommand{
		orderID:  orderID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

func (c UpdateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateOrderItemCommand) Quantity() int {
	return c.quantity
}
