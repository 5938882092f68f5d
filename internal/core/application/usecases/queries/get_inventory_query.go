package queries

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery reads the available quantity of one product.
type GetInventoryQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetInventoryQuery(productID kernel.UUID) (GetInventoryQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetInventoryQuery{}, err
	}
	return GetInventoryQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

func (q GetInventoryQuery) ProductID() kernel.UUID {
	return q.productID
}

type GetInventoryQueryResponse struct {
	ProductID kernel.UUID
	SKU       string
	Name      string
	Quantity  int
	UpdatedAt time.Time
}
