package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand sets the current price of a product. Existing order items
// keep the price they were created with.
type ChangeProductPriceCommand struct {
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

func NewChangeProductPriceCommand(productID kernel.UUID, price kernel.Money) (ChangeProductPriceCommand, error) {
	if err := errors.Join(productID.Validate(), price.Validate()); err != nil {
		return ChangeProductPriceCommand{}, err
	}
	return ChangeProductPriceCommand{productID: productID, price: price, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductPriceCommand) Price() kernel.Money {
	return c.price
}
