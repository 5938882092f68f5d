package inventory

import (
	"errors"
	"fmt"
	"strings"

	"sales/internal/core/domain/model/kernel"
)

var (
	// ErrInsufficientStock is the sentinel for confirmations that request more than is available.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStockIsNotConstructed is returned when a Stock was not built by NewStock or RestoreStock.
	ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock constructor")
)

// Shortfall is one product whose available quantity does not cover the requested one.
type Shortfall struct {
	ProductID kernel.UUID
	Available int
	Requested int
}

func (s Shortfall) String() string {
	return fmt.Sprintf("product %s: requested %d, available %d", s.ProductID, s.Requested, s.Available)
}

// InsufficientStockError lists every shortfall found during a confirmation, not only the first.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

// NewInsufficientStockError creates an InsufficientStockError.
func NewInsufficientStockError(shortfalls []Shortfall) *InsufficientStockError {
	return &InsufficientStockError{Shortfalls: shortfalls}
}

func (e *InsufficientStockError) Error() string {
	lines := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		lines = append(lines, s.String())
	}
	return fmt.Sprintf("%s: %s", ErrInsufficientStock, strings.Join(lines, "; "))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
