package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

var (
	// ErrInvalidState is the sentinel for operations the current status does not allow.
	ErrInvalidState = errors.New("operation is not permitted in current order status")

	// ErrInvalidQuantity is the sentinel for item quantities below one.
	ErrInvalidQuantity = errors.New("item quantity is invalid")

	// ErrEmptyOrder is returned when confirming an order without items.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// InvalidStateError names the rejected operation and the status the order was in.
type InvalidStateError struct {
	Operation string
	Status    Status
}

func newInvalidStateError(operation string, status Status) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: order is %s", e.Operation, e.Status)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidQuantityError carries the rejected quantity.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d is less than %d", ErrInvalidQuantity, e.Quantity, MinItemQuantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

func newItemNotFoundError(itemID kernel.UUID) error {
	return errs.NewObjectNotFoundError("order item", itemID.String())
}
