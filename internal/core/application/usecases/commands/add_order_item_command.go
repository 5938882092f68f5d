package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand appends a product line to a draft order.
// The unit price is not part of the command: it is taken from the product at handling time.
// The quantity is checked by the handler once the order is known to be a draft.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID, productID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		productID.Validate(),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	cmd.orderID = orderID
	cmd.productID = productID
	cmd.quantity = quantity
	return cmd, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}
