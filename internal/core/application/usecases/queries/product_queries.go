package queries

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ProductResponse is the catalog view of one product.
type ProductResponse struct {
	ID          kernel.UUID
	SKU         string
	Name        string
	Description string
	Price       kernel.Money
	CreatedAt   time.Time
}

type GetProductQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

// ListProductsQuery pages through the catalog ordered by SKU.
type ListProductsQuery struct {
	page  page
	guard guard.ConstructorGuard
}

func NewListProductsQuery(limit, offset int) (ListProductsQuery, error) {
	p, err := newPage(limit, offset)
	if err != nil {
		return ListProductsQuery{}, err
	}
	return ListProductsQuery{page: p, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Limit() int {
	return q.page.limit
}

func (q ListProductsQuery) Offset() int {
	return q.page.offset
}
