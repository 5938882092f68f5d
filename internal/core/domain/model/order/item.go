package order

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

// MinItemQuantity is the smallest quantity a line may carry.
const MinItemQuantity = 1

// ErrItemIsNotConstructed is returned when an Item was not built by NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product line of an order.
//
// The unit price is a snapshot taken when the line is created. Later changes to the
// product price never reach existing items. The line total is always quantity x unit price.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	lineTotal kernel.Money
	guard     guard.ConstructorGuard
}

// NewItem creates an order line for productID. unitPrice must be the product's
// current price at the time of the call.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rehydrates a persisted line. The line total is derived again rather
// than trusted from storage.
func RestoreItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	return NewItem(id, productID, quantity, unitPrice)
}

// Validate fails for items that skipped the constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *Item) LineTotal() kernel.Money {
	return i.lineTotal
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

// setQuantity also refreshes the line total, so the two can never disagree.
func (i *Item) setQuantity(quantity int) error {
	if quantity < MinItemQuantity {
		return &InvalidQuantityError{Quantity: quantity}
	}
	i.quantity = quantity
	i.lineTotal = i.unitPrice.Multiply(quantity)
	return nil
}
