package inventory

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

// Stock is the available quantity of one product.
type Stock struct {
	productID kernel.UUID
	quantity  int
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewStock creates the inventory record of a newly registered product.
func NewStock(productID kernel.UUID, quantity int) (*Stock, error) {
	return RestoreStock(productID, quantity, time.Now())
}

// RestoreStock rehydrates a persisted inventory record.
func RestoreStock(productID kernel.UUID, quantity int, updatedAt time.Time) (*Stock, error) {
	s := &Stock{updatedAt: updatedAt.UTC(), guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setProductID(productID),
		s.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate fails for stocks that skipped the constructor.
func (s *Stock) Validate() error {
	if s == nil {
		return ErrStockIsNotConstructed
	}
	return s.guard.Validate(ErrStockIsNotConstructed)
}

func (s *Stock) ProductID() kernel.UUID {
	return s.productID
}

func (s *Stock) Quantity() int {
	return s.quantity
}

func (s *Stock) UpdatedAt() time.Time {
	return s.updatedAt
}

// CanDeduct reports whether amount units are available.
func (s *Stock) CanDeduct(amount int) bool {
	return amount >= 0 && s.quantity >= amount
}

// Shortfall describes the gap for amount, if there is one.
func (s *Stock) Shortfall(amount int) (Shortfall, bool) {
	if s.CanDeduct(amount) {
		return Shortfall{}, false
	}
	return Shortfall{ProductID: s.productID, Available: s.quantity, Requested: amount}, true
}

// Deduct subtracts amount. It fails with InsufficientStockError rather than go below zero.
func (s *Stock) Deduct(amount int) error {
	if amount < 1 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, s.quantity)
	}
	if shortfall, short := s.Shortfall(amount); short {
		return NewInsufficientStockError([]Shortfall{shortfall})
	}
	s.quantity -= amount
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Stock) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	s.productID = productID
	return nil
}

func (s *Stock) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	s.quantity = quantity
	return nil
}
